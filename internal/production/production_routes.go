package production

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/authz"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, policy authz.Policy, rdb *redis.Client) {
	records := r.Group("/production")
	records.Use(middleware.AuthMiddleware())
	{
		records.GET("", authz.Authorize(policy, authz.ResourceRecord, authz.ActionRead), h.List)
		records.GET("/:id", authz.Authorize(policy, authz.ResourceRecord, authz.ActionRead), h.Get)

		create := []gin.HandlerFunc{authz.Authorize(policy, authz.ResourceRecord, authz.ActionCreate)}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb))
		}
		records.POST("", append(create, h.Create)...)

		records.PUT("/:id", authz.Authorize(policy, authz.ResourceRecord, authz.ActionUpdate), h.Update)
		records.DELETE("/:id", authz.Authorize(policy, authz.ResourceRecord, authz.ActionDelete), h.Delete)
	}
}
