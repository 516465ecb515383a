package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, app *Application) error
	FindByJobID(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) error

	// Cross-collection reads; consistency is maintained by application code,
	// there are no foreign keys to lean on.
	JobExists(ctx context.Context, jobID uuid.UUID) (bool, error)
	ApplicantRole(ctx context.Context, userID uuid.UUID) (string, error)
	CompanyOwner(ctx context.Context, companyID uuid.UUID) (uuid.UUID, error)

	ApplicantsByJobID(ctx context.Context, jobID uuid.UUID) ([]ApplicantRow, error)
	ApplicantsByOwnerAndWindow(ctx context.Context, addedBy uuid.UUID, from, to time.Time) ([]ApplicantRow, error)
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

func (r *repository) Create(ctx context.Context, app *Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) FindByJobID(ctx context.Context, jobID uuid.UUID) ([]Application, error) {
	var apps []Application
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) DeleteByJobIDs(ctx context.Context, jobIDs []uuid.UUID) error {
	if len(jobIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("job_id IN ?", jobIDs).
		Delete(&Application{}).Error
}

func (r *repository) JobExists(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("jobs").
		Where("id = ?", jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ApplicantRole(ctx context.Context, userID uuid.UUID) (string, error) {
	var role string
	err := r.db.WithContext(ctx).
		Table("users").
		Select("role").
		Where("id = ?", userID).
		Scan(&role).Error
	return role, err
}

func (r *repository) CompanyOwner(ctx context.Context, companyID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.db.WithContext(ctx).
		Table("companies").
		Select("company_hr").
		Where("id = ?", companyID).
		Scan(&ownerID).Error
	return ownerID, err
}

func (r *repository) ApplicantsByJobID(ctx context.Context, jobID uuid.UUID) ([]ApplicantRow, error) {
	var rows []ApplicantRow
	err := r.applicantQuery(ctx).
		Where("applications.job_id = ?", jobID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ApplicantsByOwnerAndWindow(ctx context.Context, addedBy uuid.UUID, from, to time.Time) ([]ApplicantRow, error) {
	var rows []ApplicantRow
	err := r.applicantQuery(ctx).
		Where("jobs.added_by = ?", addedBy).
		Where("applications.created_at >= ? AND applications.created_at < ?", from, to).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) applicantQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("applications").
		Select(`applications.id   AS application_id,
			applications.job_id   AS job_id,
			applications.user_id  AS user_id,
			users.first_name || ' ' || users.last_name AS applicant_name,
			users.email           AS applicant_email,
			applications.user_tech_skills,
			applications.user_soft_skills,
			applications.user_resume,
			applications.created_at AS applied_at`).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN users ON users.id = applications.user_id").
		Order("applications.created_at ASC")
}
