package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_companies_name"`
	Description       string    `gorm:"type:text;not null"`
	Industry          string    `gorm:"type:varchar(255);not null"`
	Address           string    `gorm:"type:varchar(512);not null"`
	NumberOfEmployees string    `gorm:"type:varchar(20);not null"` // bucket enum, validated at binding
	CompanyEmail      string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_companies_email"`
	CompanyHR         uuid.UUID `gorm:"type:uuid;not null;index"` // owning user, role Company_HR
	CreatedAt         time.Time
}
