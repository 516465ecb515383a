package application

import (
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/middleware"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("/",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "application", "create"),
			handler.Apply,
		)

		// Export walks every application of the day; keep it slow.
		apps.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "application", "export"),
			handler.Export,
		)
	}
}
