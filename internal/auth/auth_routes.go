package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 5), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
