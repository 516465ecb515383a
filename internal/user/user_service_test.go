package user_test

import (
	"context"
	"testing"
	"time"

	applicationMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/application/mock"
	companyPkg "github.com/AYA-EBRAHIM18/Job-Search-App/internal/company"
	companyMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/company/mock"
	jobMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/job/mock"
	kafkaMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/messaging/kafka/mock"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/user"
	usererrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/user/errors"
	userMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeOtpGuard struct {
	allowed   bool
	registers int
	resets    int
}

func (g *fakeOtpGuard) Register(ctx context.Context, recoveryEmail string) (bool, error) {
	g.registers++
	return g.allowed, nil
}

func (g *fakeOtpGuard) Reset(ctx context.Context, recoveryEmail string) error {
	g.resets++
	return nil
}

func newGormWithSQLMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(pw)
}

func TestService_SignIn(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	guard := &fakeOtpGuard{allowed: true}
	service := user.NewService(nil, mockRepo, nil, nil, nil, nil, guard)
	ctx := context.Background()

	account := &user.User{
		ID:       uuid.New(),
		Email:    "aya@example.com",
		Password: hashOf(t, "password123"),
		Role:     "User",
		Status:   user.StatusOffline,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, account.Email).
			Return(account, nil)
		mockRepo.EXPECT().
			UpdateStatus(ctx, account.ID, user.StatusOnline).
			Return(nil)

		resp, err := service.SignIn(ctx, user.SignInRequest{Email: account.Email, Password: "password123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.StatusOnline, resp.User.Status)
	})

	t.Run("Unknown email and wrong password fail identically", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "nobody@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, errUnknown := service.SignIn(ctx, user.SignInRequest{Email: "nobody@example.com", Password: "password123"})

		mockRepo.EXPECT().
			FindByEmail(ctx, account.Email).
			Return(account, nil)

		_, errWrongPass := service.SignIn(ctx, user.SignInRequest{Email: account.Email, Password: "not-it"})

		assert.ErrorIs(t, errUnknown, usererrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, usererrors.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})
}

func TestService_SignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	service := user.NewService(nil, mockRepo, nil, nil, nil, nil, &fakeOtpGuard{allowed: true})
	ctx := context.Background()

	req := user.SignUpRequest{
		FirstName:     "Aya",
		LastName:      "Ebrahim",
		Email:         "aya@example.com",
		Password:      "password123",
		RecoveryEmail: "recovery@example.com",
		DOB:           "1999-04-02",
		MobileNumber:  "+201000000000",
		Role:          "User",
	}

	t.Run("Success hashes password and stays offline", func(t *testing.T) {
		var created *user.User
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				created = u
				return nil
			})

		resp, err := service.SignUp(ctx, req)

		assert.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEqual(t, req.Password, created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(req.Password)))
		assert.Equal(t, user.StatusOffline, created.Status)
		assert.Equal(t, "Aya Ebrahim", resp.Username)
	})

	t.Run("Duplicate email maps to conflict", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: user.ConstraintUsersEmail})

		_, err := service.SignUp(ctx, req)
		assert.ErrorIs(t, err, usererrors.ErrEmailExists)
	})

	t.Run("Duplicate mobile maps to conflict", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: user.ConstraintUsersMobile})

		_, err := service.SignUp(ctx, req)
		assert.ErrorIs(t, err, usererrors.ErrMobileExists)
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMock.NewMockRepository(ctrl)
	ctx := context.Background()

	otp := "123456"
	future := time.Now().Add(5 * time.Minute)
	past := time.Now().Add(-1 * time.Minute)

	req := user.ResetPasswordRequest{
		RecoveryEmail: "recovery@example.com",
		Otp:           otp,
		NewPassword:   "brand-new-pass",
	}

	accountWith := func(code *string, expiry *time.Time) []user.User {
		return []user.User{{
			ID:                     uuid.New(),
			RecoveryEmail:          req.RecoveryEmail,
			Password:               hashOf(t, "old-pass"),
			PasswordResetOtp:       code,
			PasswordResetOtpExpiry: expiry,
		}}
	}

	t.Run("Success clears OTP and resets the counter", func(t *testing.T) {
		guard := &fakeOtpGuard{allowed: true}
		service := user.NewService(nil, mockRepo, nil, nil, nil, nil, guard)

		accounts := accountWith(&otp, &future)
		mockRepo.EXPECT().
			FindAllByRecoveryEmail(ctx, req.RecoveryEmail).
			Return(accounts, nil)
		mockRepo.EXPECT().
			ClearResetOtp(ctx, accounts[0].ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, newHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(req.NewPassword)))
				return nil
			})

		err := service.ResetPassword(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, 1, guard.registers)
		assert.Equal(t, 1, guard.resets)
	})

	t.Run("Wrong OTP", func(t *testing.T) {
		service := user.NewService(nil, mockRepo, nil, nil, nil, nil, &fakeOtpGuard{allowed: true})

		wrong := "654321"
		mockRepo.EXPECT().
			FindAllByRecoveryEmail(ctx, req.RecoveryEmail).
			Return(accountWith(&wrong, &future), nil)

		err := service.ResetPassword(ctx, req)
		assert.ErrorIs(t, err, usererrors.ErrInvalidOrExpiredOtp)
	})

	t.Run("Expired OTP", func(t *testing.T) {
		service := user.NewService(nil, mockRepo, nil, nil, nil, nil, &fakeOtpGuard{allowed: true})

		mockRepo.EXPECT().
			FindAllByRecoveryEmail(ctx, req.RecoveryEmail).
			Return(accountWith(&otp, &past), nil)

		err := service.ResetPassword(ctx, req)
		assert.ErrorIs(t, err, usererrors.ErrInvalidOrExpiredOtp)
	})

	t.Run("No OTP issued", func(t *testing.T) {
		service := user.NewService(nil, mockRepo, nil, nil, nil, nil, &fakeOtpGuard{allowed: true})

		mockRepo.EXPECT().
			FindAllByRecoveryEmail(ctx, req.RecoveryEmail).
			Return(accountWith(nil, nil), nil)

		err := service.ResetPassword(ctx, req)
		assert.ErrorIs(t, err, usererrors.ErrInvalidOrExpiredOtp)
	})

	t.Run("Attempt budget exhausted before any lookup", func(t *testing.T) {
		guard := &fakeOtpGuard{allowed: false}
		service := user.NewService(nil, mockRepo, nil, nil, nil, nil, guard)

		err := service.ResetPassword(ctx, req)
		assert.ErrorIs(t, err, usererrors.ErrTooManyOtpAttempts)
	})
}

func TestService_RequestPasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gormDB, sqlMock := newGormWithSQLMock(t)
	mockRepo := userMock.NewMockRepository(ctrl)
	mockOutbox := kafkaMock.NewMockOutboxRepository(ctrl)
	guard := &fakeOtpGuard{allowed: true}
	service := user.NewService(gormDB, mockRepo, nil, nil, nil, mockOutbox, guard)
	ctx := context.Background()

	account := user.User{ID: uuid.New(), RecoveryEmail: "recovery@example.com"}

	t.Run("OTP persisted and queued atomically", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		mockRepo.EXPECT().
			FindAllByRecoveryEmail(ctx, account.RecoveryEmail).
			Return([]user.User{account}, nil)
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().
			SetResetOtp(ctx, account.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, otp string, expiry time.Time) error {
				assert.Len(t, otp, 6)
				assert.True(t, expiry.After(time.Now()))
				return nil
			})
		mockOutbox.EXPECT().WithTx(gomock.Any()).Return(mockOutbox)
		mockOutbox.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)

		err := service.RequestPasswordReset(ctx, user.ForgetPasswordRequest{RecoveryEmail: account.RecoveryEmail})

		assert.NoError(t, err)
		assert.Equal(t, 1, guard.resets)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Unknown recovery email", func(t *testing.T) {
		mockRepo.EXPECT().
			FindAllByRecoveryEmail(ctx, "missing@example.com").
			Return(nil, nil)

		err := service.RequestPasswordReset(ctx, user.ForgetPasswordRequest{RecoveryEmail: "missing@example.com"})
		assert.ErrorIs(t, err, usererrors.ErrRecoveryEmailNotFound)
	})
}

func TestService_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gormDB, sqlMock := newGormWithSQLMock(t)
	mockRepo := userMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockApplications := applicationMock.NewMockRepository(ctrl)
	service := user.NewService(gormDB, mockRepo, mockCompanies, mockJobs, mockApplications, nil, &fakeOtpGuard{allowed: true})
	ctx := context.Background()

	hrID := uuid.New()
	comp := &companyPkg.Company{ID: uuid.New(), CompanyHR: hrID}
	jobIDs := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("HR account cascades applications, jobs, company, user in order", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		mockRepo.EXPECT().FindByID(ctx, hrID).Return(&user.User{ID: hrID, Role: "Company_HR"}, nil)
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockCompanies.EXPECT().WithTx(gomock.Any()).Return(mockCompanies).Times(2)
		mockJobs.EXPECT().WithTx(gomock.Any()).Return(mockJobs)
		mockApplications.EXPECT().WithTx(gomock.Any()).Return(mockApplications)

		gomock.InOrder(
			mockCompanies.EXPECT().FindByHR(ctx, hrID).Return(comp, nil),
			mockJobs.EXPECT().IDsByOwner(ctx, hrID).Return(jobIDs, nil),
			mockApplications.EXPECT().DeleteByJobIDs(ctx, jobIDs).Return(nil),
			mockJobs.EXPECT().DeleteByOwner(ctx, hrID).Return(nil),
			mockCompanies.EXPECT().Delete(ctx, comp.ID).Return(nil),
			mockRepo.EXPECT().Delete(ctx, hrID).Return(nil),
		)

		err := service.DeleteAccount(ctx, hrID.String())

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Plain user deletes only itself", func(t *testing.T) {
		plainID := uuid.New()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		mockRepo.EXPECT().FindByID(ctx, plainID).Return(&user.User{ID: plainID, Role: "User"}, nil)
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockCompanies.EXPECT().WithTx(gomock.Any()).Return(mockCompanies)
		mockCompanies.EXPECT().FindByHR(ctx, plainID).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.EXPECT().Delete(ctx, plainID).Return(nil)

		err := service.DeleteAccount(ctx, plainID.String())

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Unknown account", func(t *testing.T) {
		missing := uuid.New()
		mockRepo.EXPECT().FindByID(ctx, missing).Return(nil, gorm.ErrRecordNotFound)

		err := service.DeleteAccount(ctx, missing.String())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
