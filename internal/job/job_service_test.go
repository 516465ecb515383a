package job_test

import (
	"context"
	"testing"

	applicationMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/application/mock"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/job"
	joberrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/job/errors"
	jobMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/job/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
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

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	service := job.NewService(nil, mockRepo, nil)
	ctx := context.Background()

	ownerID := uuid.New()
	req := job.CreateJobRequest{
		JobTitle:        "Backend Engineer",
		JobLocation:     "remotely",
		WorkingTime:     "full-time",
		SeniorityLevel:  "Senior",
		JobDescription:  "Go services",
		TechnicalSkills: []string{"go", "postgres"},
	}

	mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, j *job.Job) error {
			assert.Equal(t, ownerID, j.AddedBy)
			return nil
		})

	resp, err := service.Create(ctx, ownerID.String(), req)

	assert.NoError(t, err)
	assert.Equal(t, ownerID.String(), resp.AddedBy)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	service := job.NewService(nil, mockRepo, nil)
	ctx := context.Background()

	ownerID := uuid.New()
	existing := &job.Job{ID: uuid.New(), JobTitle: "Old title", AddedBy: ownerID}

	t.Run("Owner updates", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := service.Update(ctx, ownerID.String(), existing.ID.String(), job.UpdateJobRequest{JobTitle: "New title"})

		assert.NoError(t, err)
		assert.Equal(t, "New title", resp.JobTitle)
	})

	t.Run("Non-owner is Forbidden", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

		_, err := service.Update(ctx, uuid.NewString(), existing.ID.String(), job.UpdateJobRequest{JobTitle: "Hijack"})
		assert.ErrorIs(t, err, joberrors.ErrNotJobOwner)
	})

	t.Run("Unknown job", func(t *testing.T) {
		missing := uuid.New()
		mockRepo.EXPECT().FindByID(ctx, missing).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Update(ctx, ownerID.String(), missing.String(), job.UpdateJobRequest{})
		assert.ErrorIs(t, err, joberrors.ErrJobNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gormDB, sqlMock := newGormWithSQLMock(t)
	mockRepo := jobMock.NewMockRepository(ctrl)
	mockApplications := applicationMock.NewMockRepository(ctrl)
	service := job.NewService(gormDB, mockRepo, mockApplications)
	ctx := context.Background()

	ownerID := uuid.New()
	existing := &job.Job{ID: uuid.New(), AddedBy: ownerID}

	t.Run("Applications removed before the job", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockApplications.EXPECT().WithTx(gomock.Any()).Return(mockApplications)

		gomock.InOrder(
			mockRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil),
			mockApplications.EXPECT().DeleteByJobIDs(ctx, []uuid.UUID{existing.ID}).Return(nil),
			mockRepo.EXPECT().Delete(ctx, existing.ID).Return(nil),
		)

		err := service.Delete(ctx, ownerID.String(), existing.ID.String())

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Non-owner rolls back untouched", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockApplications.EXPECT().WithTx(gomock.Any()).Return(mockApplications)
		mockRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

		err := service.Delete(ctx, uuid.NewString(), existing.ID.String())

		assert.ErrorIs(t, err, joberrors.ErrNotJobOwner)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestService_GetByCompanyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	service := job.NewService(nil, mockRepo, nil)
	ctx := context.Background()

	hrID := uuid.New()

	t.Run("Jobs of the company's HR", func(t *testing.T) {
		mockRepo.EXPECT().
			CompanyByName(ctx, "Acme").
			Return(&job.CompanyRef{ID: uuid.New(), CompanyHR: hrID}, nil)
		mockRepo.EXPECT().
			FindByOwner(ctx, hrID).
			Return([]job.Job{{ID: uuid.New(), AddedBy: hrID}}, nil)

		out, err := service.GetByCompanyName(ctx, "Acme")

		assert.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Unknown company", func(t *testing.T) {
		mockRepo.EXPECT().
			CompanyByName(ctx, "Ghost").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetByCompanyName(ctx, "Ghost")
		assert.ErrorIs(t, err, joberrors.ErrNoJobsFound)
	})

	t.Run("Company without jobs", func(t *testing.T) {
		mockRepo.EXPECT().
			CompanyByName(ctx, "Empty").
			Return(&job.CompanyRef{ID: uuid.New(), CompanyHR: hrID}, nil)
		mockRepo.EXPECT().
			FindByOwner(ctx, hrID).
			Return(nil, nil)

		_, err := service.GetByCompanyName(ctx, "Empty")
		assert.ErrorIs(t, err, joberrors.ErrNoJobsFound)
	})
}

func TestService_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := jobMock.NewMockRepository(ctrl)
	service := job.NewService(nil, mockRepo, nil)
	ctx := context.Background()

	t.Run("CSV skills are split and trimmed", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByFilter(ctx, job.Filter{
				WorkingTime:     "full-time",
				TechnicalSkills: []string{"go", "redis"},
			}).
			Return([]job.Job{{ID: uuid.New()}}, nil)

		out, err := service.Filter(ctx, job.FilterRequest{
			WorkingTime:     "full-time",
			TechnicalSkills: "go, redis ,",
		})

		assert.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Seniority is canonicalized before the query", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByFilter(ctx, job.Filter{SeniorityLevel: job.LevelTeamLead}).
			Return([]job.Job{{ID: uuid.New()}}, nil)

		out, err := service.Filter(ctx, job.FilterRequest{SeniorityLevel: "team-lead"})

		assert.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Unknown seniority is rejected without a query", func(t *testing.T) {
		_, err := service.Filter(ctx, job.FilterRequest{SeniorityLevel: "Wizard"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, joberrors.ErrNoJobsFound)
	})

	t.Run("Zero matches is NotFound", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByFilter(ctx, gomock.Any()).
			Return(nil, nil)

		_, err := service.Filter(ctx, job.FilterRequest{JobTitle: "ghost"})
		assert.ErrorIs(t, err, joberrors.ErrNoJobsFound)
	})
}
