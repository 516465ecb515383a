package errors

import (
	"net/http"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	// One message for wrong password and unknown email, so sign-in never
	// leaks whether an account exists.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredential,
		"Incorrect email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid authentication token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Authentication token has expired",
		http.StatusUnauthorized,
	)

	ErrEmailExists = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusConflict,
	)

	ErrUsernameExists = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)

	ErrMobileExists = apperror.New(
		apperror.CodeConflict,
		"Mobile number already exists",
		http.StatusConflict,
	)

	ErrNoAccountsFound = apperror.New(
		apperror.CodeNotFound,
		"No accounts found with this recovery email",
		http.StatusNotFound,
	)

	ErrRecoveryEmailNotFound = apperror.New(
		apperror.CodeNotFound,
		"No account found with this email",
		http.StatusNotFound,
	)

	ErrInvalidOrExpiredOtp = apperror.New(
		"INVALID_OR_EXPIRED_OTP",
		"Invalid or expired OTP",
		http.StatusBadRequest,
	)

	ErrTooManyOtpAttempts = apperror.New(
		apperror.CodeTooManyRequests,
		"Too many OTP attempts, request a new code later",
		http.StatusTooManyRequests,
	)
)
