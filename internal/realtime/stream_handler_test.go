package realtime_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/realtime"
)

func setupEchoRouter(hub *realtime.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := realtime.NewHandler(hub, hub)

	r := gin.New()
	r.POST("/production/events", handler.Echo)
	return r
}

func TestHandler_Echo(t *testing.T) {
	hub := realtime.NewHub()
	router := setupEchoRouter(hub)

	t.Run("Rebroadcasts Payload", func(t *testing.T) {
		id, ch := hub.Subscribe()
		defer hub.Unsubscribe(id)

		req := httptest.NewRequest(http.MethodPost, "/production/events",
			strings.NewReader(`{"lineNo":"BE-01","actualQty":42}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"lineNo":"BE-01","actualQty":42}`, string(receive(t, ch)))
	})

	t.Run("Rejects Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/production/events",
			strings.NewReader(`not json`))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Echo Without Subscribers Still Succeeds", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/production/events",
			strings.NewReader(`{"anything":true}`))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
