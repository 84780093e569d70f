package line

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryRepository keeps lines in insertion order so the dropdown is stable
// across mock-mode requests.
type memoryRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]*ProductionLine
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID: make(map[uuid.UUID]*ProductionLine),
	}
}

func (r *memoryRepository) Create(ctx context.Context, l *ProductionLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if strings.EqualFold(existing.LineNo, l.LineNo) {
			return gorm.ErrDuplicatedKey
		}
	}

	cp := *l
	r.byID[l.ID] = &cp
	r.order = append(r.order, l.ID)
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context, activeOnly bool) ([]ProductionLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]ProductionLine, 0, len(r.order))
	for _, id := range r.order {
		l := r.byID[id]
		if activeOnly && !l.IsActive {
			continue
		}
		rows = append(rows, *l)
	}
	return rows, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ProductionLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memoryRepository) Update(ctx context.Context, l *ProductionLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[l.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	// A rename must not land on another line's number.
	for id, existing := range r.byID {
		if id != l.ID && strings.EqualFold(existing.LineNo, l.LineNo) {
			return gorm.ErrDuplicatedKey
		}
	}

	cp := *l
	r.byID[l.ID] = &cp
	return nil
}
