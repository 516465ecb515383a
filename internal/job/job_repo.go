package job

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CompanyRef is the minimal company projection the job module needs for the
// by-company listing.
type CompanyRef struct {
	ID        uuid.UUID `gorm:"column:id"`
	CompanyHR uuid.UUID `gorm:"column:company_hr"`
}

// Filter mirrors FilterRequest after parsing; zero values mean "no predicate".
type Filter struct {
	WorkingTime     string
	JobLocation     string
	SeniorityLevel  string
	JobTitle        string
	TechnicalSkills []string
}

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*Job, error)
	FindAll(ctx context.Context) ([]Job, error)
	FindByOwner(ctx context.Context, addedBy uuid.UUID) ([]Job, error)
	IDsByOwner(ctx context.Context, addedBy uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, addedBy uuid.UUID) error
	FindByFilter(ctx context.Context, f Filter) ([]Job, error)

	CompanyByName(ctx context.Context, companyName string) (*CompanyRef, error)
	CompanyInfoByOwner(ctx context.Context, addedBy uuid.UUID) (*CompanyInfo, error)
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

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	return &j, err
}

func (r *repository) FindAll(ctx context.Context) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindByOwner(ctx context.Context, addedBy uuid.UUID) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).
		Where("added_by = ?", addedBy).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) IDsByOwner(ctx context.Context, addedBy uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&Job{}).
		Where("added_by = ?", addedBy).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Job{}, "id = ?", id).Error
}

func (r *repository) DeleteByOwner(ctx context.Context, addedBy uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("added_by = ?", addedBy).
		Delete(&Job{}).Error
}

func (r *repository) FindByFilter(ctx context.Context, f Filter) ([]Job, error) {
	q := r.db.WithContext(ctx).Model(&Job{})

	if f.WorkingTime != "" {
		q = q.Where("working_time = ?", f.WorkingTime)
	}
	if f.JobLocation != "" {
		q = q.Where("job_location = ?", f.JobLocation)
	}
	if f.SeniorityLevel != "" {
		q = q.Where("seniority_level ILIKE ?", "%"+f.SeniorityLevel+"%")
	}
	if f.JobTitle != "" {
		q = q.Where("job_title ILIKE ?", "%"+f.JobTitle+"%")
	}
	if len(f.TechnicalSkills) > 0 {
		// array overlap: any requested skill matches
		q = q.Where("technical_skills && ?", pq.Array(f.TechnicalSkills))
	}

	var jobs []Job
	err := q.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *repository) CompanyByName(ctx context.Context, companyName string) (*CompanyRef, error) {
	var ref CompanyRef
	err := r.db.WithContext(ctx).
		Table("companies").
		Select("id, company_hr").
		Where("company_name = ?", strings.TrimSpace(companyName)).
		Scan(&ref).Error
	if err != nil {
		return nil, err
	}
	if ref.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &ref, nil
}

func (r *repository) CompanyInfoByOwner(ctx context.Context, addedBy uuid.UUID) (*CompanyInfo, error) {
	var info CompanyInfo
	err := r.db.WithContext(ctx).
		Table("companies").
		Select("company_name, description, industry, address, number_of_employees, company_email").
		Where("company_hr = ?", addedBy).
		Scan(&info).Error
	if err != nil {
		return nil, err
	}
	if info.CompanyName == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &info, nil
}
