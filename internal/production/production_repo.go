package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter narrows a listing. Date, when set, matches the full calendar day
// [Date, Date+24h) in the store's reference timezone.
type Filter struct {
	LineNo string
	Shift  string
	Date   *time.Time
}

type Repository interface {
	Create(ctx context.Context, rec *ProductionRecord) error
	FindAll(ctx context.Context, f Filter) ([]ProductionRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionRecord, error)
	Update(ctx context.Context, rec *ProductionRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *ProductionRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAll(ctx context.Context, f Filter) ([]ProductionRecord, error) {
	var rows []ProductionRecord

	q := r.db.WithContext(ctx).Preload("Recorder")
	if f.LineNo != "" {
		q = q.Where("line_no = ?", f.LineNo)
	}
	if f.Shift != "" {
		q = q.Where("shift_name = ?", f.Shift)
	}
	if f.Date != nil {
		start := *f.Date
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 0, 1))
	}

	err := q.Order("date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*ProductionRecord, error) {
	var rec ProductionRecord
	err := r.db.WithContext(ctx).Preload("Recorder").First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Update(ctx context.Context, rec *ProductionRecord) error {
	return r.db.WithContext(ctx).Omit("Recorder").Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&ProductionRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
