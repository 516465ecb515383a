package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Application is immutable after creation; it only ever disappears through a
// cascade when its Job, Company or applicant account is deleted.
type Application struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	JobID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserTechSkills pq.StringArray `gorm:"type:text[];not null"`
	UserSoftSkills pq.StringArray `gorm:"type:text[];not null"`
	UserResume     string         `gorm:"type:varchar(512);not null"` // stored filename, not a URL
	CreatedAt      time.Time
}
