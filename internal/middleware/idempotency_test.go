package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotencyRouter(rdb *redis.Client, handlerHits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "u1") })
	r.Use(middleware.Idempotency(rdb))
	r.POST("/apply", func(c *gin.Context) {
		*handlerHits++
		c.JSON(http.StatusCreated, gin.H{"ok": true, "data": gin.H{"fresh": true}})
	})
	return r
}

func TestIdempotency_ReplaysCachedStatus(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	hits := 0
	router := idempotencyRouter(rdb, &hits)

	entry, err := json.Marshal(middleware.CachedResponse{
		Status: http.StatusCreated,
		Body:   json.RawMessage(`{"jobId":"j1"}`),
	})
	require.NoError(t, err)
	mock.ExpectGet("idemp:/apply:u1:key-1").SetVal(string(entry))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/apply", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"jobId":"j1"`)
	assert.Equal(t, 0, hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_CorruptCacheEntryFallsThrough(t *testing.T) {
	cases := map[string]string{
		"not json":       "not-json{{",
		"missing status": `{"body":{"jobId":"j1"}}`,
	}
	for name, cached := range cases {
		t.Run(name, func(t *testing.T) {
			rdb, mock := redismock.NewClientMock()
			hits := 0
			router := idempotencyRouter(rdb, &hits)

			cacheKey := "idemp:/apply:u1:key-2"
			mock.ExpectGet(cacheKey).SetVal(cached)
			mock.ExpectDel(cacheKey).SetVal(1)
			mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/apply", nil)
			req.Header.Set("Idempotency-Key", "key-2")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusCreated, w.Code)
			assert.Equal(t, 1, hits)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
