package job

import "time"

type CreateJobRequest struct {
	JobTitle        string   `json:"job_title" binding:"required"`
	JobLocation     string   `json:"job_location" binding:"required,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"working_time" binding:"required,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniority_level" binding:"required,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"job_description" binding:"required"`
	TechnicalSkills []string `json:"technical_skills" binding:"required,min=1"`
	SoftSkills      []string `json:"soft_skills" binding:"required,min=1"`
}

type UpdateJobRequest struct {
	JobTitle        string   `json:"job_title" binding:"omitempty"`
	JobLocation     string   `json:"job_location" binding:"omitempty,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"working_time" binding:"omitempty,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniority_level" binding:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"job_description" binding:"omitempty"`
	TechnicalSkills []string `json:"technical_skills" binding:"omitempty,min=1"`
	SoftSkills      []string `json:"soft_skills" binding:"omitempty,min=1"`
}

// FilterRequest carries the optional predicates of GET /jobs/filter; all
// provided predicates are ANDed.
type FilterRequest struct {
	WorkingTime     string `form:"workingTime" binding:"omitempty,oneof=part-time full-time"`
	JobLocation     string `form:"jobLocation" binding:"omitempty,oneof=onsite remotely hybrid"`
	SeniorityLevel  string `form:"seniorityLevel"`
	JobTitle        string `form:"jobTitle"`
	TechnicalSkills string `form:"technicalSkills"` // comma-separated list
}

type JobResponse struct {
	ID              string    `json:"id"`
	JobTitle        string    `json:"job_title"`
	JobLocation     string    `json:"job_location"`
	WorkingTime     string    `json:"working_time"`
	SeniorityLevel  string    `json:"seniority_level"`
	JobDescription  string    `json:"job_description"`
	TechnicalSkills []string  `json:"technical_skills"`
	SoftSkills      []string  `json:"soft_skills"`
	AddedBy         string    `json:"added_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// CompanyInfo is the slice of company data joined onto job listings.
type CompanyInfo struct {
	CompanyName       string `json:"company_name" gorm:"column:company_name"`
	Description       string `json:"description" gorm:"column:description"`
	Industry          string `json:"industry" gorm:"column:industry"`
	Address           string `json:"address" gorm:"column:address"`
	NumberOfEmployees string `json:"number_of_employees" gorm:"column:number_of_employees"`
	CompanyEmail      string `json:"company_email" gorm:"column:company_email"`
}

type JobWithCompanyResponse struct {
	JobResponse
	Company *CompanyInfo `json:"company"`
}
