package job

import (
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/middleware"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("/",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "job", "create"),
			handler.Create,
		)

		jobs.PUT("/:jobId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "job", "update"),
			handler.Update,
		)

		jobs.DELETE("/:jobId",
			middleware.RateLimitByUser(0.5, 1),
			middleware.RBACAuthorize(rbacService, "job", "delete"),
			handler.Delete,
		)

		// Reads are role-agnostic; any authenticated account may browse.
		jobs.GET("/", middleware.RateLimitByUser(2, 10), handler.GetAll)
		jobs.GET("/jobsByCom", middleware.RateLimitByUser(2, 10), handler.GetByCompany)
		jobs.GET("/filter", middleware.RateLimitByUser(2, 10), handler.Filter)
	}
}
