package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	applicationerrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/application/errors"
	companyerrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/company/errors"
	joberrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/job/errors"
	usererrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const roleUser = "User"

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, actorID string, req ApplyRequest, resumeFilename string) (ApplicationResponse, error)
	Export(ctx context.Context, actorID, companyID, date string) (ExportFile, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	baseURL string
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, baseURL string, logger ...*zap.Logger) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

// ResumeURL rewrites a stored filename into a servable URL. Rewriting happens
// at read time only, so the storage location stays decoupled from serving.
func ResumeURL(baseURL, filename string) string {
	return strings.TrimRight(baseURL, "/") + "/uploads/" + filename
}

func (s *service) Apply(ctx context.Context, actorID string, req ApplyRequest, resumeFilename string) (ApplicationResponse, error) {
	userID, err := uuid.Parse(actorID)
	if err != nil {
		return ApplicationResponse{}, usererrors.ErrUserNotFound
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return ApplicationResponse{}, joberrors.ErrJobNotFound
	}

	role, err := s.repo.ApplicantRole(ctx, userID)
	if err != nil {
		s.logger.Error("apply applicant lookup failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	if role == "" {
		return ApplicationResponse{}, applicationerrors.ErrApplicantNotFound
	}
	if role != roleUser {
		return ApplicationResponse{}, applicationerrors.ErrApplicantRoleRequired
	}

	// Job existence is checked before any write, so a miss creates nothing.
	exists, err := s.repo.JobExists(ctx, jobID)
	if err != nil {
		s.logger.Error("apply job lookup failed", zap.Error(err))
		return ApplicationResponse{}, err
	}
	if !exists {
		return ApplicationResponse{}, joberrors.ErrJobNotFound
	}

	app := &Application{
		ID:             uuid.New(),
		JobID:          jobID,
		UserID:         userID,
		UserTechSkills: req.UserTechSkills,
		UserSoftSkills: req.UserSoftSkills,
		UserResume:     resumeFilename,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		s.logger.Error("apply persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("application created",
		zap.String("application_id", app.ID.String()),
		zap.String("job_id", jobID.String()),
		zap.String("user_id", userID.String()),
	)

	return s.mapToResponse(*app), nil
}

func (s *service) Export(ctx context.Context, actorID, companyID, date string) (ExportFile, error) {
	compID, err := uuid.Parse(companyID)
	if err != nil {
		return ExportFile{}, companyerrors.ErrCompanyNotFound
	}

	// Day boundaries are fixed to UTC so the export does not depend on the
	// server's local time zone.
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return ExportFile{}, applicationerrors.ErrInvalidDate
	}

	owner, err := s.repo.CompanyOwner(ctx, compID)
	if err != nil {
		s.logger.Error("export company lookup failed", zap.Error(err))
		return ExportFile{}, err
	}
	if owner == uuid.Nil {
		return ExportFile{}, companyerrors.ErrCompanyNotFound
	}
	if owner.String() != actorID {
		return ExportFile{}, companyerrors.ErrNotCompanyOwner
	}

	// Concurrent identical exports share one spreadsheet build.
	key := companyID + ":" + date
	content, err, _ := s.sf.Do(key, func() (any, error) {
		rows, err := s.repo.ApplicantsByOwnerAndWindow(ctx, owner, day, day.Add(24*time.Hour))
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, applicationerrors.ErrNoApplicationsFound
		}
		return buildApplicationsWorkbook(rows, s.baseURL)
	})
	if err != nil {
		return ExportFile{}, err
	}

	// The unique suffix keeps two exports for the same company/date from
	// colliding in a client's download directory.
	filename := fmt.Sprintf("Applications_%s_%s_%s.xlsx", companyID, date, uuid.New().String()[:8])

	s.logger.Info("applications exported",
		zap.String("company_id", companyID),
		zap.String("date", date),
		zap.String("filename", filename),
	)

	return ExportFile{Filename: filename, Content: content.([]byte)}, nil
}

func (s *service) mapToResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             app.ID.String(),
		JobID:          app.JobID.String(),
		UserID:         app.UserID.String(),
		UserTechSkills: app.UserTechSkills,
		UserSoftSkills: app.UserSoftSkills,
		UserResume:     ResumeURL(s.baseURL, app.UserResume),
		CreatedAt:      app.CreatedAt,
	}
}
