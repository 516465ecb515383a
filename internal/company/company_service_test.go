package company_test

import (
	"context"
	"testing"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/application"
	applicationMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/application/mock"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/company"
	companyerrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/company/errors"
	companyMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/company/mock"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/job"
	joberrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/job/errors"
	jobMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/job/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(nil, mockRepo, nil, nil, "http://localhost:3000")
	ctx := context.Background()

	hrID := uuid.New()
	req := company.AddCompanyRequest{
		CompanyName:       "Acme",
		Industry:          "Tech",
		NumberOfEmployees: "11-20",
		CompanyEmail:      "hr@acme.example",
	}

	t.Run("Caller becomes the owning HR", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, comp *company.Company) error {
				assert.Equal(t, hrID, comp.CompanyHR)
				return nil
			})

		resp, err := service.Add(ctx, hrID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.CompanyName)
	})

	t.Run("Duplicate name maps to conflict", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_companies_name"})

		_, err := service.Add(ctx, hrID.String(), req)
		assert.ErrorIs(t, err, companyerrors.ErrCompanyExists)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gormDB, sqlMock := newGormWithSQLMock(t)
	mockRepo := companyMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockApplications := applicationMock.NewMockRepository(ctrl)
	service := company.NewService(gormDB, mockRepo, mockJobs, mockApplications, "http://localhost:3000")
	ctx := context.Background()

	hrID := uuid.New()
	comp := &company.Company{ID: uuid.New(), CompanyHR: hrID}
	jobIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	t.Run("Cascade deletes leaves before roots", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockJobs.EXPECT().WithTx(gomock.Any()).Return(mockJobs)
		mockApplications.EXPECT().WithTx(gomock.Any()).Return(mockApplications)

		gomock.InOrder(
			mockRepo.EXPECT().FindByID(ctx, comp.ID).Return(comp, nil),
			mockJobs.EXPECT().IDsByOwner(ctx, hrID).Return(jobIDs, nil),
			mockApplications.EXPECT().DeleteByJobIDs(ctx, jobIDs).Return(nil),
			mockJobs.EXPECT().DeleteByOwner(ctx, hrID).Return(nil),
			mockRepo.EXPECT().Delete(ctx, comp.ID).Return(nil),
		)

		err := service.Delete(ctx, hrID.String(), comp.ID.String())

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Non-owner is rejected before any delete", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockJobs.EXPECT().WithTx(gomock.Any()).Return(mockJobs)
		mockApplications.EXPECT().WithTx(gomock.Any()).Return(mockApplications)
		mockRepo.EXPECT().FindByID(ctx, comp.ID).Return(comp, nil)

		err := service.Delete(ctx, uuid.NewString(), comp.ID.String())

		assert.ErrorIs(t, err, companyerrors.ErrNotCompanyOwner)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Unknown company", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockJobs.EXPECT().WithTx(gomock.Any()).Return(mockJobs)
		mockApplications.EXPECT().WithTx(gomock.Any()).Return(mockApplications)
		mockRepo.EXPECT().FindByID(ctx, comp.ID).Return(nil, gorm.ErrRecordNotFound)

		err := service.Delete(ctx, hrID.String(), comp.ID.String())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(nil, mockRepo, nil, nil, "http://localhost:3000")
	ctx := context.Background()

	t.Run("Matches are returned", func(t *testing.T) {
		mockRepo.EXPECT().
			SearchByName(ctx, "acme").
			Return([]company.Company{{ID: uuid.New(), CompanyName: "Acme"}}, nil)

		out, err := service.Search(ctx, "acme")

		assert.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Zero matches is NotFound", func(t *testing.T) {
		mockRepo.EXPECT().
			SearchByName(ctx, "ghost").
			Return(nil, nil)

		_, err := service.Search(ctx, "ghost")
		assert.ErrorIs(t, err, companyerrors.ErrNoCompaniesFound)
	})
}

func TestService_GetApplicationsByJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	mockJobs := jobMock.NewMockRepository(ctrl)
	mockApplications := applicationMock.NewMockRepository(ctrl)
	service := company.NewService(nil, mockRepo, mockJobs, mockApplications, "http://localhost:3000")
	ctx := context.Background()

	ownerID := uuid.New()
	jobID := uuid.New()
	ownedJob := &job.Job{ID: jobID, AddedBy: ownerID}

	t.Run("Owner sees applicants with resume URLs", func(t *testing.T) {
		mockJobs.EXPECT().FindByID(ctx, jobID).Return(ownedJob, nil)
		mockApplications.EXPECT().
			ApplicantsByJobID(ctx, jobID).
			Return([]application.ApplicantRow{{
				ApplicationID:  uuid.NewString(),
				JobID:          jobID.String(),
				UserID:         uuid.NewString(),
				ApplicantName:  "Sample Applicant",
				ApplicantEmail: "applicant@example.com",
				UserResume:     "abc_resume.pdf",
			}}, nil)

		out, err := service.GetApplicationsByJob(ctx, ownerID.String(), jobID.String())

		assert.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "http://localhost:3000/uploads/abc_resume.pdf", out[0].UserResume)
	})

	t.Run("Non-owner is Forbidden", func(t *testing.T) {
		mockJobs.EXPECT().FindByID(ctx, jobID).Return(ownedJob, nil)

		_, err := service.GetApplicationsByJob(ctx, uuid.NewString(), jobID.String())
		assert.ErrorIs(t, err, joberrors.ErrNotJobOwner)
	})

	t.Run("Unknown job", func(t *testing.T) {
		mockJobs.EXPECT().FindByID(ctx, jobID).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetApplicationsByJob(ctx, ownerID.String(), jobID.String())
		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})
}
