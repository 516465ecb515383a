package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/events"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumePasswordOtpRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	mailer notification.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.password_otp")
	log.Info("password otp consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("password otp consumer stopped")
				return
			}
			log.Error("fetch password otp message failed", zap.Error(err))
			continue
		}

		var event events.PasswordOtpRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode password otp event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if time.Now().After(event.ExpiresAt) {
			log.Warn("password otp event already expired, skipping",
				zap.String("user_id", event.UserID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := mailer.SendOtp(event.RecoveryEmail, event.Otp, event.ExpiresAt.UTC().Format(time.RFC1123)); err != nil {
			log.Error("send password otp mail failed",
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit password otp message failed", zap.Error(err))
			continue
		}

		log.Info("password otp mail delivered",
			zap.String("user_id", event.UserID),
		)
	}
}
