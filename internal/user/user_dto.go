package user

import "time"

type SignUpRequest struct {
	FirstName     string `json:"firstName" binding:"required,min=2,max=100"`
	LastName      string `json:"lastName" binding:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	RecoveryEmail string `json:"recoveryEmail" binding:"omitempty,email"`
	DOB           string `json:"DOB" binding:"required,datetime=2006-01-02"`
	MobileNumber  string `json:"mobileNumber" binding:"required,min=7,max=32"`
	Role          string `json:"role" binding:"required,oneof=User Company_HR"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateAccountRequest struct {
	FirstName     string `json:"firstName" binding:"omitempty,min=2,max=100"`
	LastName      string `json:"lastName" binding:"omitempty,min=2,max=100"`
	Email         string `json:"email" binding:"omitempty,email"`
	RecoveryEmail string `json:"recoveryEmail" binding:"omitempty,email"`
	DOB           string `json:"DOB" binding:"omitempty,datetime=2006-01-02"`
	MobileNumber  string `json:"mobileNumber" binding:"omitempty,min=7,max=32"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type ForgetPasswordRequest struct {
	RecoveryEmail string `json:"recoveryEmail" binding:"required,email"`
}

type ResetPasswordRequest struct {
	RecoveryEmail string `json:"recoveryEmail" binding:"required,email"`
	Otp           string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword   string `json:"newPassword" binding:"required,min=6"`
}

// UserResponse never carries the password hash or any reset state.
type UserResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	RecoveryEmail string    `json:"recoveryEmail,omitempty"`
	DOB           string    `json:"DOB"`
	MobileNumber  string    `json:"mobileNumber"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProfileResponse is the public projection served to other accounts.
type ProfileResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Status       string `json:"status"`
}

type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:            u.ID.String(),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Username:      u.Username,
		Email:         u.Email,
		RecoveryEmail: u.RecoveryEmail,
		DOB:           u.DOB.Format("2006-01-02"),
		MobileNumber:  u.MobileNumber,
		Role:          u.Role,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
	}
}

func toProfileResponse(u *User) ProfileResponse {
	return ProfileResponse{
		ID:           u.ID.String(),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		Status:       u.Status,
	}
}
