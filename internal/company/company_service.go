package company

import (
	"context"
	"errors"
	"strings"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/application"
	companyerrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/company/errors"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/job"
	joberrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/job/errors"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	Add(ctx context.Context, actorID string, req AddCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, actorID, companyID string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, actorID, companyID string) error
	GetData(ctx context.Context, actorID, companyID string) (CompanyWithJobsResponse, error)
	Search(ctx context.Context, name string) ([]CompanyResponse, error)
	GetApplicationsByJob(ctx context.Context, actorID, jobID string) ([]JobApplicationResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	jobs         job.Repository
	applications application.Repository
	baseURL      string
	logger       *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	jobs job.Repository,
	applications application.Repository,
	baseURL string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		jobs:         jobs,
		applications: applications,
		baseURL:      baseURL,
		logger:       l,
	}
}

func (s *service) Add(ctx context.Context, actorID string, req AddCompanyRequest) (CompanyResponse, error) {
	hrID, err := uuid.Parse(actorID)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrNotCompanyOwner
	}

	comp := &Company{
		ID:                uuid.New(),
		CompanyName:       strings.TrimSpace(req.CompanyName),
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		CompanyEmail:      req.CompanyEmail,
		CompanyHR:         hrID,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		if isUniqueViolation(err) {
			return CompanyResponse{}, companyerrors.ErrCompanyExists
		}
		s.logger.Error("create company persist failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("company created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", comp.ID.String()),
		zap.String("company_hr", actorID),
	)

	return mapToResponse(*comp), nil
}

func (s *service) Update(ctx context.Context, actorID, companyID string, req UpdateCompanyRequest) (CompanyResponse, error) {
	comp, err := s.ownedCompany(ctx, s.repo, actorID, companyID)
	if err != nil {
		return CompanyResponse{}, err
	}

	if req.CompanyName != "" {
		comp.CompanyName = strings.TrimSpace(req.CompanyName)
	}
	if req.Description != "" {
		comp.Description = req.Description
	}
	if req.Industry != "" {
		comp.Industry = req.Industry
	}
	if req.Address != "" {
		comp.Address = req.Address
	}
	if req.NumberOfEmployees != "" {
		comp.NumberOfEmployees = req.NumberOfEmployees
	}
	if req.CompanyEmail != "" {
		comp.CompanyEmail = req.CompanyEmail
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		if isUniqueViolation(err) {
			return CompanyResponse{}, companyerrors.ErrCompanyExists
		}
		s.logger.Error("update company persist failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	return mapToResponse(*comp), nil
}

// Delete runs the full company cascade in a single transaction, leaves before
// roots: applications of the HR's jobs, then those jobs, then the company.
// A crash mid-cascade therefore rolls everything back instead of leaving
// orphans.
func (s *service) Delete(ctx context.Context, actorID, companyID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		jtx := s.jobs.WithTx(tx)
		atx := s.applications.WithTx(tx)

		comp, err := s.ownedCompany(ctx, qtx, actorID, companyID)
		if err != nil {
			return err
		}

		jobIDs, err := jtx.IDsByOwner(ctx, comp.CompanyHR)
		if err != nil {
			s.logger.Error("cascade list jobs failed", zap.Error(err))
			return err
		}

		if err := atx.DeleteByJobIDs(ctx, jobIDs); err != nil {
			s.logger.Error("cascade delete applications failed", zap.Error(err))
			return err
		}

		if err := jtx.DeleteByOwner(ctx, comp.CompanyHR); err != nil {
			s.logger.Error("cascade delete jobs failed", zap.Error(err))
			return err
		}

		if err := qtx.Delete(ctx, comp.ID); err != nil {
			s.logger.Error("cascade delete company failed", zap.Error(err))
			return err
		}

		s.logger.Info("company deleted with cascade",
			zap.String("company_id", companyID),
			zap.Int("jobs", len(jobIDs)),
		)
		return nil
	})
}

func (s *service) GetData(ctx context.Context, actorID, companyID string) (CompanyWithJobsResponse, error) {
	comp, err := s.ownedCompany(ctx, s.repo, actorID, companyID)
	if err != nil {
		return CompanyWithJobsResponse{}, err
	}

	jobs, err := s.jobs.FindByOwner(ctx, comp.CompanyHR)
	if err != nil {
		return CompanyWithJobsResponse{}, err
	}

	resp := CompanyWithJobsResponse{CompanyResponse: mapToResponse(*comp)}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, job.JobResponse{
			ID:              j.ID.String(),
			JobTitle:        j.JobTitle,
			JobLocation:     j.JobLocation,
			WorkingTime:     j.WorkingTime,
			SeniorityLevel:  j.SeniorityLevel,
			JobDescription:  j.JobDescription,
			TechnicalSkills: j.TechnicalSkills,
			SoftSkills:      j.SoftSkills,
			AddedBy:         j.AddedBy.String(),
			CreatedAt:       j.CreatedAt,
		})
	}
	return resp, nil
}

func (s *service) Search(ctx context.Context, name string) ([]CompanyResponse, error) {
	companies, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, companyerrors.ErrNoCompaniesFound
	}

	out := make([]CompanyResponse, 0, len(companies))
	for _, comp := range companies {
		out = append(out, mapToResponse(comp))
	}
	return out, nil
}

func (s *service) GetApplicationsByJob(ctx context.Context, actorID, jobID string) ([]JobApplicationResponse, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, joberrors.ErrJobNotFound
	}

	j, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrJobNotFound
		}
		return nil, err
	}
	if j.AddedBy.String() != actorID {
		return nil, joberrors.ErrNotJobOwner
	}

	rows, err := s.applications.ApplicantsByJobID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]JobApplicationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, JobApplicationResponse{
			ID:             row.ApplicationID,
			UserID:         row.UserID,
			ApplicantName:  row.ApplicantName,
			ApplicantEmail: row.ApplicantEmail,
			UserTechSkills: row.UserTechSkills,
			UserSoftSkills: row.UserSoftSkills,
			UserResume:     application.ResumeURL(s.baseURL, row.UserResume),
			CreatedAt:      row.AppliedAt,
		})
	}
	return out, nil
}

// ownedCompany loads a company and enforces that the actor is its HR owner.
func (s *service) ownedCompany(ctx context.Context, repo Repository, actorID, companyID string) (*Company, error) {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return nil, companyerrors.ErrCompanyNotFound
	}

	comp, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	if comp.CompanyHR.String() != actorID {
		return nil, companyerrors.ErrNotCompanyOwner
	}
	return comp, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}

func mapToResponse(comp Company) CompanyResponse {
	return CompanyResponse{
		ID:                comp.ID.String(),
		CompanyName:       comp.CompanyName,
		Description:       comp.Description,
		Industry:          comp.Industry,
		Address:           comp.Address,
		NumberOfEmployees: comp.NumberOfEmployees,
		CompanyEmail:      comp.CompanyEmail,
		CompanyHR:         comp.CompanyHR.String(),
		CreatedAt:         comp.CreatedAt,
	}
}
