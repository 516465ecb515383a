package application

import (
	"time"

	"github.com/lib/pq"
)

type ApplyRequest struct {
	JobID          string   `form:"jobId" binding:"required,uuid"`
	UserTechSkills []string `form:"userTechSkills" binding:"required,min=1"`
	UserSoftSkills []string `form:"userSoftSkills" binding:"required,min=1"`
}

type ApplicationResponse struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	UserID         string    `json:"user_id"`
	UserTechSkills []string  `json:"user_tech_skills"`
	UserSoftSkills []string  `json:"user_soft_skills"`
	UserResume     string    `json:"user_resume"` // rewritten to a servable URL
	CreatedAt      time.Time `json:"created_at"`
}

// ApplicantRow is an application joined with its applicant, used both for the
// per-job listing and the spreadsheet export.
type ApplicantRow struct {
	ApplicationID  string         `gorm:"column:application_id"`
	JobID          string         `gorm:"column:job_id"`
	UserID         string         `gorm:"column:user_id"`
	ApplicantName  string         `gorm:"column:applicant_name"`
	ApplicantEmail string         `gorm:"column:applicant_email"`
	UserTechSkills pq.StringArray `gorm:"column:user_tech_skills;type:text[]"`
	UserSoftSkills pq.StringArray `gorm:"column:user_soft_skills;type:text[]"`
	UserResume     string         `gorm:"column:user_resume"`
	AppliedAt      time.Time      `gorm:"column:applied_at"`
}

// ExportFile is the finished spreadsheet, built in memory so concurrent
// exports never contend on a shared temp file.
type ExportFile struct {
	Filename string
	Content  []byte
}
