package realtime

import (
	"github.com/gin-gonic/gin"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	stream := r.Group("/production")
	stream.Use(middleware.AuthMiddleware())
	{
		stream.GET("/stream", h.Stream)
		stream.POST("/events", h.Echo)
	}
}
