package notification

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail. The consumer depends on this
// interface so tests can swap in a recording fake.
type Mailer interface {
	SendOtp(recipient string, otp string, expiresAt string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPMailer(logger ...*zap.Logger) Mailer {
	baseLogger := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		baseLogger = logger[0]
	}

	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD")),
		from:   os.Getenv("SMTP_FROM"),
		logger: baseLogger.Named("notification.mailer"),
	}
}

func (m *smtpMailer) SendOtp(recipient string, otp string, expiresAt string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Your password reset code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your password reset code is %s.\n\nIt expires at %s. If you did not request a reset, ignore this email.",
		otp, expiresAt,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("send otp mail failed", zap.String("recipient", recipient), zap.Error(err))
		return err
	}

	m.logger.Info("otp mail sent", zap.String("recipient", recipient))
	return nil
}
