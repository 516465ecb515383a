package company

import (
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/middleware"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.POST("/addCompany",
			middleware.RateLimitByUser(0.5, 1),
			middleware.RBACAuthorize(rbacService, "company", "create"),
			handler.Add,
		)

		companies.PUT("/:companyId",
			middleware.RateLimitByUser(0.5, 1),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.Update,
		)

		// Deletion cascades through jobs and applications; keep it rare.
		companies.DELETE("/:companyId",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "company", "delete"),
			handler.Delete,
		)

		companies.GET("/getComData/:companyId",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "company", "read"),
			handler.GetData,
		)

		// Search is open to any authenticated account.
		companies.GET("/searchCompany",
			middleware.RateLimitByUser(2, 10),
			handler.Search,
		)

		companies.GET("/getApplications/:jobId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "application", "list"),
			handler.GetApplicationsByJob,
		)
	}
}
