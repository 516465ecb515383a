package events

import "time"

const PasswordOtpRequestedTopic = "user.password.otp.v1"

// PasswordOtpRequestedEvent asks the notification consumer to deliver a
// password-reset OTP out-of-band. The OTP itself never appears in an HTTP
// response.
type PasswordOtpRequestedEvent struct {
	EventType     string    `json:"event_type"`
	UserID        string    `json:"user_id"`
	RecoveryEmail string    `json:"recovery_email"`
	Otp           string    `json:"otp"`
	ExpiresAt     time.Time `json:"expires_at"`
	OccurredAt    time.Time `json:"occurred_at"`
}
