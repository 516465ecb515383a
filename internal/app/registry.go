package app

import (
	"os"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/application"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/company"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/job"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/messaging/kafka"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/rbac"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/rbac/infra"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/storage"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Storage ---
	resumeStore, err := storage.NewLocalStore(uploadDir)
	if err != nil {
		return err
	}

	// --- Services ---
	otpGuard := user.NewOtpLimiter(rdb)
	userService := user.NewService(gormDB, userRepo, companyRepo, jobRepo, applicationRepo, outboxRepo, otpGuard)
	companyService := company.NewService(gormDB, companyRepo, jobRepo, applicationRepo, baseURL)
	jobService := job.NewService(gormDB, jobRepo, applicationRepo)
	applicationService := application.NewService(gormDB, applicationRepo, baseURL)

	// --- Handlers ---
	userHandler := user.NewHandler(userService)
	companyHandler := company.NewHandler(companyService)
	jobHandler := job.NewHandler(jobService)
	applicationHandler := application.NewHandlerWithRedis(applicationService, resumeStore, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		user.RegisterRoutes(api, userHandler)
		company.RegisterRoutes(api, companyHandler, rbacService)
		job.RegisterRoutes(api, jobHandler, rbacService)
		application.RegisterRoutes(api, applicationHandler, rbacService, rdb)
	}

	// Uploaded resumes are served straight from disk.
	router.Static("/uploads", resumeStore.Dir())

	return nil
}
