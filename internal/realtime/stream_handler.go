package realtime

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/events"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/production"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/response"
)

const maxEchoPayload = 64 << 10

type Handler struct {
	hub       *Hub
	publisher production.EventPublisher
}

func NewHandler(hub *Hub, publisher production.EventPublisher) *Handler {
	return &Handler{hub: hub, publisher: publisher}
}

// Stream holds the connection open and pushes every broadcast record as a
// dataUpdated server-sent event.
func (h *Handler) Stream(c *gin.Context) {
	id, ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case payload, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(events.DataUpdatedEvent, payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// Echo re-broadcasts whatever payload a client sends, without deduplication.
// Clients use it to push their optimistic updates to every other dashboard.
func (h *Handler) Echo(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxEchoPayload))
	if err != nil || !json.Valid(body) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Body must be valid JSON", nil)
		return
	}

	event := events.RecordEvent{
		EventType:  events.TypeClientEcho,
		OccurredAt: time.Now().UTC(),
		Record:     body,
	}

	// Best effort: a failed broadcast never fails the request.
	_ = h.publisher.PublishRecordChanged(c.Request.Context(), event)

	response.Success(c, http.StatusOK, gin.H{"broadcast": true})
}
