package application

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	applicationerrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/application/errors"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/middleware"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/apperror"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const maxResumeSize = 10 << 20 // 10MB

// ResumeStore is a local interface; the storage package satisfies it.
type ResumeStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(name string) error
}

type Handler struct {
	service Service
	store   ResumeStore
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, store ResumeStore, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("application.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.handler")
	}
	return &Handler{service: service, store: store, logger: l}
}

func NewHandlerWithRedis(service Service, store ResumeStore, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, store, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Apply(c *gin.Context) {
	lockKey := c.GetString("idempotency_lock_key")
	cacheKey := c.GetString("idempotency_cache_key")
	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	actorID := c.GetString("user_id")

	var req ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	file, err := c.FormFile("userResume")
	if err != nil {
		h.writeServiceError(c, applicationerrors.ErrResumeRequired)
		return
	}
	if !validResume(file) {
		h.writeServiceError(c, applicationerrors.ErrInvalidResume)
		return
	}

	stored, err := h.store.Save(file)
	if err != nil {
		h.logger.Error("store resume failed", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Apply(c.Request.Context(), actorID, req, stored)
	if err != nil {
		// The record was never created; drop the orphaned upload.
		if rmErr := h.store.Remove(stored); rmErr != nil {
			h.logger.Warn("remove orphaned resume failed", zap.String("file", stored), zap.Error(rmErr))
		}
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, err := json.Marshal(resp); err == nil {
			entry, err := json.Marshal(middleware.CachedResponse{Status: http.StatusCreated, Body: payload})
			if err == nil {
				h.rdb.Set(c.Request.Context(), cacheKey, entry, 24*time.Hour)
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	actorID := c.GetString("user_id")
	companyID := c.Query("companyId")
	date := c.Query("date")

	if companyID == "" || date == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"companyId and date query parameters are required", nil)
		return
	}

	file, err := h.service.Export(c.Request.Context(), actorID, companyID, date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+file.Filename)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		file.Content,
	)
}

func validResume(file *multipart.FileHeader) bool {
	if file.Size > maxResumeSize {
		return false
	}
	// Mirrors the upload policy: document mime types only.
	contentType := file.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "application")
}
