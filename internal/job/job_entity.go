package job

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Seniority values as stored on the row. Filter queries accept them in any
// case and are canonicalized against this set.
const (
	LevelJunior   = "Junior"
	LevelMid      = "Mid-Level"
	LevelSenior   = "Senior"
	LevelTeamLead = "Team-Lead"
	LevelCTO      = "CTO"
)

type Job struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	JobTitle        string         `gorm:"type:varchar(255);not null"`
	JobLocation     string         `gorm:"type:varchar(20);not null"`
	WorkingTime     string         `gorm:"type:varchar(20);not null"`
	SeniorityLevel  string         `gorm:"type:varchar(20);not null"`
	JobDescription  string         `gorm:"type:text;not null"`
	TechnicalSkills pq.StringArray `gorm:"type:text[];not null"`
	SoftSkills      pq.StringArray `gorm:"type:text[];not null"`
	AddedBy         uuid.UUID      `gorm:"type:uuid;not null;index"` // HR user who owns the job
	CreatedAt       time.Time
}
