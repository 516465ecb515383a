package company

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, comp *Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByHR(ctx context.Context, companyHR uuid.UUID) (*Company, error)
	Update(ctx context.Context, comp *Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, name string) ([]Company, error)
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

func (r *repository) Create(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).First(&comp, "id = ?", id).Error
	return &comp, err
}

func (r *repository) FindByHR(ctx context.Context, companyHR uuid.UUID) (*Company, error) {
	var comp Company
	// Callers branch on a nil company, so never hand back the zero value
	// alongside an error.
	if err := r.db.WithContext(ctx).First(&comp, "company_hr = ?", companyHR).Error; err != nil {
		return nil, err
	}
	return &comp, nil
}

func (r *repository) Update(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Save(comp).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Company{}, "id = ?", id).Error
}

func (r *repository) SearchByName(ctx context.Context, name string) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).
		Where("company_name ILIKE ?", "%"+name+"%").
		Order("company_name ASC").
		Find(&companies).Error
	return companies, err
}
