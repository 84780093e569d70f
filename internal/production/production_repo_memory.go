package production

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryRepository backs the mock mode. The lock keeps the map safe once the
// runtime schedules handlers on multiple goroutines; per-entity operations
// stay single atomic read-modify-writes.
type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*ProductionRecord
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID: make(map[uuid.UUID]*ProductionRecord),
	}
}

func (r *memoryRepository) Create(ctx context.Context, rec *ProductionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *rec
	r.byID[rec.ID] = &cp
	return nil
}

func (r *memoryRepository) FindAll(ctx context.Context, f Filter) ([]ProductionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]ProductionRecord, 0, len(r.byID))
	for _, rec := range r.byID {
		if f.LineNo != "" && rec.LineNo != f.LineNo {
			continue
		}
		if f.Shift != "" && (rec.ShiftName == nil || *rec.ShiftName != f.Shift) {
			continue
		}
		if f.Date != nil {
			start := *f.Date
			end := start.AddDate(0, 0, 1)
			if rec.Date.Before(start) || !rec.Date.Before(end) {
				continue
			}
		}
		rows = append(rows, *rec)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	return rows, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ProductionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *memoryRepository) Update(ctx context.Context, rec *ProductionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rec.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *rec
	r.byID[rec.ID] = &cp
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	return nil
}
