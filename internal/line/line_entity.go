package line

import (
	"time"

	"github.com/google/uuid"
)

// ProductionLine is a physical line definition. Records reference it loosely
// by LineNo, so lines are deactivated with IsActive instead of deleted.
type ProductionLine struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LineNo           string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	SapLocation      string    `gorm:"type:varchar(50);not null"`
	Description      *string   `gorm:"type:text"`
	StandardManpower *int
	TargetUPPH       *float64
	IsActive         bool `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ProductionLine) TableName() string {
	return "production_lines"
}
