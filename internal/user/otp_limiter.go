package user

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxOtpAttempts   = 5
	otpAttemptWindow = 10 * time.Minute
)

// OtpGuard bounds reset-code guessing per recovery email. Register reports
// whether another attempt is still allowed.
type OtpGuard interface {
	Register(ctx context.Context, recoveryEmail string) (allowed bool, err error)
	Reset(ctx context.Context, recoveryEmail string) error
}

type otpLimiter struct {
	rdb *redis.Client
}

func NewOtpLimiter(rdb *redis.Client) OtpGuard {
	return &otpLimiter{rdb: rdb}
}

func otpAttemptKey(recoveryEmail string) string {
	return "otp_attempts:" + recoveryEmail
}

func (l *otpLimiter) Register(ctx context.Context, recoveryEmail string) (bool, error) {
	key := otpAttemptKey(recoveryEmail)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// Window starts at the first failed or successful attempt.
		if err := l.rdb.Expire(ctx, key, otpAttemptWindow).Err(); err != nil {
			return false, err
		}
	}

	return count <= maxOtpAttempts, nil
}

func (l *otpLimiter) Reset(ctx context.Context, recoveryEmail string) error {
	return l.rdb.Del(ctx, otpAttemptKey(recoveryEmail)).Err()
}
