package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Constraint names are referenced when mapping 23505 violations to the
// right conflict error, keep them in sync with the column tags.
const (
	ConstraintUsersEmail    = "uq_users_email"
	ConstraintUsersUsername = "uq_users_username"
	ConstraintUsersMobile   = "uq_users_mobile"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	Username      string    `gorm:"type:varchar(201);not null;uniqueIndex:uq_users_username"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password      string    `gorm:"type:varchar(255);not null"`
	RecoveryEmail string    `gorm:"type:varchar(255);index"`
	DOB           time.Time `gorm:"type:date;not null"`
	MobileNumber  string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_users_mobile"`
	Role          string    `gorm:"type:varchar(20);not null"`
	Status        string    `gorm:"type:varchar(10);not null;default:'offline'"`

	PasswordResetOtp       *string    `gorm:"type:varchar(6)"`
	PasswordResetOtpExpiry *time.Time `gorm:""`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
