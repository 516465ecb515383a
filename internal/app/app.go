package app

import (
	"net/http"
	"os"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/application"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/company"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/job"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/messaging/kafka"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/middleware"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/apperror"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/connection"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/response"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := gormDB.AutoMigrate(
		&user.User{},
		&company.Company{},
		&job.Job{},
		&application.Application{},
		&kafka.OutboxEvent{},
	); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	router.Use(middleware.RequestID())

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "Route not found", nil)
	})

	return registerModules(router, gormDB, redisClient)
}
