package job

import (
	"context"
	"errors"
	"strings"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/application"
	joberrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/job/errors"
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/job_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, actorID string, req CreateJobRequest) (JobResponse, error)
	Update(ctx context.Context, actorID, jobID string, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, actorID, jobID string) error
	GetAllWithCompany(ctx context.Context) ([]JobWithCompanyResponse, error)
	GetByCompanyName(ctx context.Context, companyName string) ([]JobResponse, error)
	Filter(ctx context.Context, req FilterRequest) ([]JobResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	applications application.Repository
	logger       *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, applications application.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{db: db, repo: repo, applications: applications, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateJobRequest) (JobResponse, error) {
	ownerID, err := uuid.Parse(actorID)
	if err != nil {
		return JobResponse{}, joberrors.ErrNotJobOwner
	}

	j := &Job{
		ID:              uuid.New(),
		JobTitle:        req.JobTitle,
		JobLocation:     req.JobLocation,
		WorkingTime:     req.WorkingTime,
		SeniorityLevel:  req.SeniorityLevel,
		JobDescription:  req.JobDescription,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
		AddedBy:         ownerID,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		s.logger.Error("create job persist failed", zap.Error(err))
		return JobResponse{}, err
	}

	s.logger.Info("job created",
		zap.String("job_id", j.ID.String()),
		zap.String("added_by", actorID),
	)

	return mapToResponse(*j), nil
}

func (s *service) Update(ctx context.Context, actorID, jobID string, req UpdateJobRequest) (JobResponse, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return JobResponse{}, joberrors.ErrJobNotFound
	}

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobResponse{}, joberrors.ErrJobNotFound
		}
		return JobResponse{}, err
	}

	if j.AddedBy.String() != actorID {
		return JobResponse{}, joberrors.ErrNotJobOwner
	}

	if req.JobTitle != "" {
		j.JobTitle = req.JobTitle
	}
	if req.JobLocation != "" {
		j.JobLocation = req.JobLocation
	}
	if req.WorkingTime != "" {
		j.WorkingTime = req.WorkingTime
	}
	if req.SeniorityLevel != "" {
		j.SeniorityLevel = req.SeniorityLevel
	}
	if req.JobDescription != "" {
		j.JobDescription = req.JobDescription
	}
	if len(req.TechnicalSkills) > 0 {
		j.TechnicalSkills = req.TechnicalSkills
	}
	if len(req.SoftSkills) > 0 {
		j.SoftSkills = req.SoftSkills
	}

	if err := s.repo.Update(ctx, j); err != nil {
		s.logger.Error("update job persist failed", zap.Error(err))
		return JobResponse{}, err
	}

	return mapToResponse(*j), nil
}

// Delete removes a job and its applications in one transaction, applications
// first so a failure can never leave an application pointing at nothing.
func (s *service) Delete(ctx context.Context, actorID, jobID string) error {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return joberrors.ErrJobNotFound
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		atx := s.applications.WithTx(tx)

		j, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return joberrors.ErrJobNotFound
			}
			return err
		}

		if j.AddedBy.String() != actorID {
			return joberrors.ErrNotJobOwner
		}

		if err := atx.DeleteByJobIDs(ctx, []uuid.UUID{id}); err != nil {
			s.logger.Error("delete job applications failed", zap.String("job_id", jobID), zap.Error(err))
			return err
		}

		if err := qtx.Delete(ctx, id); err != nil {
			s.logger.Error("delete job failed", zap.String("job_id", jobID), zap.Error(err))
			return err
		}

		s.logger.Info("job deleted with applications", zap.String("job_id", jobID))
		return nil
	})
}

func (s *service) GetAllWithCompany(ctx context.Context) ([]JobWithCompanyResponse, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// One company lookup per owner, not per job.
	infoByOwner := make(map[uuid.UUID]*CompanyInfo)
	out := make([]JobWithCompanyResponse, 0, len(jobs))
	for _, j := range jobs {
		info, seen := infoByOwner[j.AddedBy]
		if !seen {
			info, err = s.repo.CompanyInfoByOwner(ctx, j.AddedBy)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			infoByOwner[j.AddedBy] = info
		}
		out = append(out, JobWithCompanyResponse{
			JobResponse: mapToResponse(j),
			Company:     info,
		})
	}
	return out, nil
}

func (s *service) GetByCompanyName(ctx context.Context, companyName string) ([]JobResponse, error) {
	ref, err := s.repo.CompanyByName(ctx, companyName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, joberrors.ErrNoJobsFound
		}
		return nil, err
	}

	jobs, err := s.repo.FindByOwner(ctx, ref.CompanyHR)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, joberrors.ErrNoJobsFound
	}

	return mapToListResponse(jobs), nil
}

var seniorityLevels = [...]string{LevelJunior, LevelMid, LevelSenior, LevelTeamLead, LevelCTO}

func canonicalSeniority(value string) (string, bool) {
	for _, level := range seniorityLevels {
		if strings.EqualFold(level, value) {
			return level, true
		}
	}
	return "", false
}

func (s *service) Filter(ctx context.Context, req FilterRequest) ([]JobResponse, error) {
	f := Filter{
		WorkingTime: req.WorkingTime,
		JobLocation: req.JobLocation,
		JobTitle:    req.JobTitle,
	}
	if req.SeniorityLevel != "" {
		level, ok := canonicalSeniority(req.SeniorityLevel)
		if !ok {
			return nil, apperror.InvalidField("seniorityLevel")
		}
		f.SeniorityLevel = level
	}
	if req.TechnicalSkills != "" {
		for _, skill := range strings.Split(req.TechnicalSkills, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				f.TechnicalSkills = append(f.TechnicalSkills, skill)
			}
		}
	}

	jobs, err := s.repo.FindByFilter(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, joberrors.ErrNoJobsFound
	}

	return mapToListResponse(jobs), nil
}

func mapToResponse(j Job) JobResponse {
	return JobResponse{
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
	}
}

func mapToListResponse(jobs []Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, mapToResponse(j))
	}
	return out
}
