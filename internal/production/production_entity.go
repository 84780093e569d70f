package production

import (
	"time"

	"github.com/google/uuid"
)

// ProductionRecord is one shift-level production entry. LineNo is a loose
// reference to a ProductionLine's line number: it is never validated against
// the registry, so records survive line deactivation and renames.
type ProductionRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LineNo      string    `gorm:"type:varchar(20);not null;index"`
	SapLocation *string   `gorm:"type:varchar(50)"`
	ModelName   string    `gorm:"type:varchar(100);not null"`

	PlanQty   int64 `gorm:"not null"`
	ActualQty int64 `gorm:"not null"`

	TargetUPPH *float64
	ActualUPPH *float64

	StandardManpower *int
	ActualManpower   *int

	FPYPercentage *float64 `gorm:"column:fpy_percentage"`
	RTYPercentage *float64 `gorm:"column:rty_percentage"`

	OSDValue      *float64 `gorm:"column:osd_value"`
	OSDPercentage *float64 `gorm:"column:osd_percentage"`

	ShiftName *string `gorm:"type:varchar(1)"`

	Date       time.Time `gorm:"type:timestamptz;not null;index"`
	RecordedBy uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Recorder *UserRef `gorm:"foreignKey:RecordedBy;references:ID"`
}

func (ProductionRecord) TableName() string {
	return "production_records"
}

type UserRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"column:name"`
	Email string    `gorm:"column:email"`
}

func (UserRef) TableName() string {
	return "users"
}
