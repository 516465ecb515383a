package user

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/application"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/company"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/events"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/job"
	kafkaoutbox "github.com/AYA-EBRAHIM18/Job-Search-App/internal/messaging/kafka"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/apperror"
	usererrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

//go:generate mockgen -destination=mock/user_service_mock.go -package=mock . Service
type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (UserResponse, error)
	SignIn(ctx context.Context, req SignInRequest) (SignInResponse, error)
	UpdateAccount(ctx context.Context, actorID string, req UpdateAccountRequest) (UserResponse, error)
	UpdatePassword(ctx context.Context, actorID string, req UpdatePasswordRequest) error
	DeleteAccount(ctx context.Context, actorID string) error
	GetAccount(ctx context.Context, actorID string) (UserResponse, error)
	GetProfile(ctx context.Context, userID string) (ProfileResponse, error)
	GetByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]UserResponse, error)
	RequestPasswordReset(ctx context.Context, req ForgetPasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	SignOut(ctx context.Context, actorID string) error
}

type service struct {
	db           *gorm.DB
	repo         Repository
	companies    company.Repository
	jobs         job.Repository
	applications application.Repository
	outbox       kafkaoutbox.OutboxRepository
	otpGuard     OtpGuard
	logger       *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	companies company.Repository,
	jobs job.Repository,
	applications application.Repository,
	outbox kafkaoutbox.OutboxRepository,
	otpGuard OtpGuard,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		outbox:       outbox,
		otpGuard:     otpGuard,
		logger:       l,
	}
}

func (s *service) SignUp(ctx context.Context, req SignUpRequest) (UserResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return UserResponse{}, apperror.InvalidField("DOB")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:            uuid.New(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.FirstName + " " + req.LastName,
		Email:         req.Email,
		Password:      string(hashed),
		RecoveryEmail: req.RecoveryEmail,
		DOB:           dob,
		MobileNumber:  req.MobileNumber,
		Role:          req.Role,
		Status:        StatusOffline,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return UserResponse{}, conflictErr
		}
		return UserResponse{}, err
	}

	s.logger.Info("user signed up",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
	)

	return toUserResponse(u), nil
}

func (s *service) SignIn(ctx context.Context, req SignInRequest) (SignInResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return SignInResponse{}, usererrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return SignInResponse{}, usererrors.ErrInvalidCredentials
	}

	if err := s.repo.UpdateStatus(ctx, u.ID, StatusOnline); err != nil {
		return SignInResponse{}, err
	}
	u.Status = StatusOnline

	token, err := generateToken(u.ID.String(), u.Role, 24*time.Hour)
	if err != nil {
		return SignInResponse{}, err
	}

	s.logger.Info("user signed in", zap.String("user_id", u.ID.String()))

	return SignInResponse{Token: token, User: toUserResponse(u)}, nil
}

func (s *service) SignOut(ctx context.Context, actorID string) error {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return usererrors.ErrUserNotFound
	}
	return s.repo.UpdateStatus(ctx, id, StatusOffline)
}

func (s *service) UpdateAccount(ctx context.Context, actorID string, req UpdateAccountRequest) (UserResponse, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	if req.Email != "" && req.Email != u.Email {
		taken, err := s.repo.ExistsOtherWithEmail(ctx, id, req.Email)
		if err != nil {
			return UserResponse{}, err
		}
		if taken {
			return UserResponse{}, usererrors.ErrEmailExists
		}
		u.Email = req.Email
	}

	if req.MobileNumber != "" && req.MobileNumber != u.MobileNumber {
		taken, err := s.repo.ExistsOtherWithMobile(ctx, id, req.MobileNumber)
		if err != nil {
			return UserResponse{}, err
		}
		if taken {
			return UserResponse{}, usererrors.ErrMobileExists
		}
		u.MobileNumber = req.MobileNumber
	}

	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.FirstName != "" || req.LastName != "" {
		u.Username = u.FirstName + " " + u.LastName
	}
	if req.RecoveryEmail != "" {
		u.RecoveryEmail = req.RecoveryEmail
	}
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return UserResponse{}, apperror.InvalidField("DOB")
		}
		u.DOB = dob
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return UserResponse{}, conflictErr
		}
		return UserResponse{}, err
	}

	return toUserResponse(u), nil
}

func (s *service) UpdatePassword(ctx context.Context, actorID string, req UpdatePasswordRequest) error {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return usererrors.ErrUserNotFound
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return usererrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return usererrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

// DeleteAccount removes the account and, when the caller owns a company,
// everything hanging off it. Applications go first, then jobs, then the
// company, then the user, all inside one transaction.
func (s *service) DeleteAccount(ctx context.Context, actorID string) error {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return usererrors.ErrUserNotFound
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return usererrors.ErrUserNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		utx := s.repo.WithTx(tx)

		comp, err := s.companies.WithTx(tx).FindByHR(ctx, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if comp != nil {
			jtx := s.jobs.WithTx(tx)
			atx := s.applications.WithTx(tx)

			jobIDs, err := jtx.IDsByOwner(ctx, comp.CompanyHR)
			if err != nil {
				return err
			}
			if len(jobIDs) > 0 {
				if err := atx.DeleteByJobIDs(ctx, jobIDs); err != nil {
					return err
				}
			}
			if err := jtx.DeleteByOwner(ctx, comp.CompanyHR); err != nil {
				return err
			}
			if err := s.companies.WithTx(tx).Delete(ctx, comp.ID); err != nil {
				return err
			}
		}

		return utx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("account deleted", zap.String("user_id", actorID))
	return nil
}

func (s *service) GetAccount(ctx context.Context, actorID string) (UserResponse, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}
	return toUserResponse(u), nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return ProfileResponse{}, usererrors.ErrUserNotFound
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, usererrors.ErrUserNotFound
	}
	return toProfileResponse(u), nil
}

func (s *service) GetByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByRecoveryEmail(ctx, recoveryEmail)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, usererrors.ErrNoAccountsFound
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

// RequestPasswordReset stores a fresh OTP and queues its delivery through
// the outbox in the same transaction, so either both happen or neither.
func (s *service) RequestPasswordReset(ctx context.Context, req ForgetPasswordRequest) error {
	users, err := s.repo.FindAllByRecoveryEmail(ctx, req.RecoveryEmail)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return usererrors.ErrRecoveryEmailNotFound
	}
	u := users[0]

	otp, err := generateOtp()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(otpTTL)

	event := events.PasswordOtpRequestedEvent{
		EventType:     "password_otp_requested",
		UserID:        u.ID.String(),
		RecoveryEmail: req.RecoveryEmail,
		Otp:           otp,
		ExpiresAt:     expiry,
		OccurredAt:    time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).SetResetOtp(ctx, u.ID, otp, expiry); err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(ctx, kafkaoutbox.OutboxEvent{
			ID:            uuid.NewString(),
			AggregateType: "user",
			AggregateID:   u.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PasswordOtpRequestedTopic,
			Payload:       payload,
		})
	})
	if err != nil {
		return err
	}

	// Fresh code invalidates the guess budget of the old one.
	if err := s.otpGuard.Reset(ctx, req.RecoveryEmail); err != nil {
		s.logger.Warn("reset otp attempt counter failed", zap.Error(err))
	}

	s.logger.Info("password reset requested", zap.String("user_id", u.ID.String()))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	allowed, err := s.otpGuard.Register(ctx, req.RecoveryEmail)
	if err != nil {
		return err
	}
	if !allowed {
		return usererrors.ErrTooManyOtpAttempts
	}

	users, err := s.repo.FindAllByRecoveryEmail(ctx, req.RecoveryEmail)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return usererrors.ErrRecoveryEmailNotFound
	}
	u := users[0]

	if u.PasswordResetOtp == nil || u.PasswordResetOtpExpiry == nil {
		return usererrors.ErrInvalidOrExpiredOtp
	}
	if *u.PasswordResetOtp != req.Otp || time.Now().After(*u.PasswordResetOtpExpiry) {
		return usererrors.ErrInvalidOrExpiredOtp
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.ClearResetOtp(ctx, u.ID, string(hashed)); err != nil {
		return err
	}

	if err := s.otpGuard.Reset(ctx, req.RecoveryEmail); err != nil {
		s.logger.Warn("reset otp attempt counter failed", zap.Error(err))
	}

	s.logger.Info("password reset completed", zap.String("user_id", u.ID.String()))
	return nil
}

func generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	switch pgErr.ConstraintName {
	case ConstraintUsersEmail:
		return usererrors.ErrEmailExists
	case ConstraintUsersUsername:
		return usererrors.ErrUsernameExists
	case ConstraintUsersMobile:
		return usererrors.ErrMobileExists
	default:
		return usererrors.ErrEmailExists
	}
}
