package line

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, l *ProductionLine) error
	FindAll(ctx context.Context, activeOnly bool) ([]ProductionLine, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionLine, error)
	Update(ctx context.Context, l *ProductionLine) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *ProductionLine) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, activeOnly bool) ([]ProductionLine, error) {
	var rows []ProductionLine
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*ProductionLine, error) {
	var l ProductionLine
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *ProductionLine) error {
	return r.db.WithContext(ctx).Save(l).Error
}
