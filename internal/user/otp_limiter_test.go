package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/user"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestOtpLimiter_Register(t *testing.T) {
	ctx := context.Background()
	key := "otp_attempts:recovery@example.com"

	t.Run("First attempt opens the window", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		limiter := user.NewOtpLimiter(rdb)

		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, 10*time.Minute).SetVal(true)

		allowed, err := limiter.Register(ctx, "recovery@example.com")

		assert.NoError(t, err)
		assert.True(t, allowed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Attempts up to the cap are allowed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		limiter := user.NewOtpLimiter(rdb)

		mock.ExpectIncr(key).SetVal(5)

		allowed, err := limiter.Register(ctx, "recovery@example.com")

		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("Attempt past the cap is denied", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		limiter := user.NewOtpLimiter(rdb)

		mock.ExpectIncr(key).SetVal(6)

		allowed, err := limiter.Register(ctx, "recovery@example.com")

		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}

func TestOtpLimiter_Reset(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	limiter := user.NewOtpLimiter(rdb)

	mock.ExpectDel("otp_attempts:recovery@example.com").SetVal(1)

	err := limiter.Reset(context.Background(), "recovery@example.com")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
