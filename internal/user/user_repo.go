package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/user_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAllByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]User, error)
	ExistsOtherWithEmail(ctx context.Context, id uuid.UUID, email string) (bool, error)
	ExistsOtherWithMobile(ctx context.Context, id uuid.UUID, mobile string) (bool, error)
	Update(ctx context.Context, u *User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SetResetOtp(ctx context.Context, id uuid.UUID, otp string, expiry time.Time) error
	ClearResetOtp(ctx context.Context, id uuid.UUID, newPasswordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAllByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("recovery_email = ?", recoveryEmail).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) ExistsOtherWithEmail(ctx context.Context, id uuid.UUID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("email = ? AND id <> ?", email, id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsOtherWithMobile(ctx context.Context, id uuid.UUID, mobile string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("mobile_number = ? AND id <> ?", mobile, id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) SetResetOtp(ctx context.Context, id uuid.UUID, otp string, expiry time.Time) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_reset_otp":        otp,
			"password_reset_otp_expiry": expiry,
		}).Error
}

// ClearResetOtp swaps the password and burns the OTP in one statement so a
// concurrent reset with the same code cannot succeed twice.
func (r *repository) ClearResetOtp(ctx context.Context, id uuid.UUID, newPasswordHash string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password":                  newPasswordHash,
			"password_reset_otp":        nil,
			"password_reset_otp_expiry": nil,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error
}
