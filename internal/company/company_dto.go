package company

import (
	"time"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/job"
)

type AddCompanyRequest struct {
	CompanyName       string `json:"company_name" binding:"required"`
	Description       string `json:"description" binding:"required"`
	Industry          string `json:"industry" binding:"required"`
	Address           string `json:"address" binding:"required"`
	NumberOfEmployees string `json:"number_of_employees" binding:"required,oneof=1-10 11-20 21-50 51-100 101-200 201-500 501-1000 1000+"`
	CompanyEmail      string `json:"company_email" binding:"required,email"`
}

type UpdateCompanyRequest struct {
	CompanyName       string `json:"company_name" binding:"omitempty"`
	Description       string `json:"description" binding:"omitempty"`
	Industry          string `json:"industry" binding:"omitempty"`
	Address           string `json:"address" binding:"omitempty"`
	NumberOfEmployees string `json:"number_of_employees" binding:"omitempty,oneof=1-10 11-20 21-50 51-100 101-200 201-500 501-1000 1000+"`
	CompanyEmail      string `json:"company_email" binding:"omitempty,email"`
}

type CompanyResponse struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"company_name"`
	Description       string    `json:"description"`
	Industry          string    `json:"industry"`
	Address           string    `json:"address"`
	NumberOfEmployees string    `json:"number_of_employees"`
	CompanyEmail      string    `json:"company_email"`
	CompanyHR         string    `json:"company_hr"`
	CreatedAt         time.Time `json:"created_at"`
}

type CompanyWithJobsResponse struct {
	CompanyResponse
	Jobs []job.JobResponse `json:"jobs"`
}

// JobApplicationResponse is an application row shown to the job's owner:
// applicant joined in, resume rewritten to a URL.
type JobApplicationResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	UserTechSkills []string  `json:"user_tech_skills"`
	UserSoftSkills []string  `json:"user_soft_skills"`
	UserResume     string    `json:"user_resume"`
	CreatedAt      time.Time `json:"created_at"`
}
