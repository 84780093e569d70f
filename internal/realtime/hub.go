package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/events"
)

const subscriberBuffer = 16

// Hub fans a payload out to every connected live-update subscriber.
// Delivery is at-most-once and unordered across subscribers: a send to a
// subscriber whose buffer is full is dropped, never awaited.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan json.RawMessage
	nextID uint64
	logger *zap.Logger
}

func NewHub(logger ...*zap.Logger) *Hub {
	l := zap.L().Named("realtime.hub")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("realtime.hub")
	}
	return &Hub{
		subs:   make(map[uint64]chan json.RawMessage),
		logger: l,
	}
}

func (h *Hub) Subscribe() (uint64, <-chan json.RawMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan json.RawMessage, subscriberBuffer)
	h.subs[id] = ch

	h.logger.Debug("subscriber connected", zap.Uint64("subscriber_id", id))
	return id, ch
}

func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
		h.logger.Debug("subscriber disconnected", zap.Uint64("subscriber_id", id))
	}
}

// Publish never blocks; slow subscribers lose the message.
func (h *Hub) Publish(payload json.RawMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- payload:
		default:
			h.logger.Warn("subscriber buffer full, dropping event", zap.Uint64("subscriber_id", id))
		}
	}
}

// PublishRecordChanged lets the hub serve as the in-process EventPublisher
// when no broker is configured.
func (h *Hub) PublishRecordChanged(ctx context.Context, event events.RecordEvent) error {
	h.Publish(event.Record)
	return nil
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
