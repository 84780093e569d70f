package line

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	lineerrors "github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/line/errors"
)

const activeLinesKey = "lines:active"
const activeLinesTTL = 5 * time.Minute

type Service interface {
	GetAllActive(ctx context.Context) ([]LineResponse, error)
	Create(ctx context.Context, req CreateLineRequest) (LineResponse, error)
	Update(ctx context.Context, id string, req UpdateLineRequest) (LineResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("line.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("line.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetAllActive serves the dropdown every data-entry form loads, so the list
// is cached in redis and concurrent misses are collapsed with singleflight.
func (s *service) GetAllActive(ctx context.Context) ([]LineResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, activeLinesKey).Result(); err == nil {
			var resp []LineResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(activeLinesKey, func() (any, error) {
		rows, err := s.repo.FindAll(ctx, true)
		if err != nil {
			return nil, err
		}

		resp := make([]LineResponse, len(rows))
		for i, row := range rows {
			resp[i] = mapToResponse(row)
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, activeLinesKey, payload, activeLinesTTL).Err(); err != nil {
					s.logger.Warn("cache active lines failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]LineResponse), nil
}

func (s *service) Create(ctx context.Context, req CreateLineRequest) (LineResponse, error) {
	row := &ProductionLine{
		ID:               uuid.New(),
		LineNo:           req.LineNo,
		SapLocation:      req.SapLocation,
		Description:      req.Description,
		StandardManpower: req.StandardManpower,
		TargetUPPH:       req.TargetUPPH,
		IsActive:         true,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		if isDuplicateLineNo(err) {
			return LineResponse{}, lineerrors.ErrLineNumberExists
		}
		s.logger.Error("create line persist failed", zap.Error(err))
		return LineResponse{}, err
	}

	s.invalidateCache(ctx)
	s.logger.Info("production line created",
		zap.String("line_id", row.ID.String()),
		zap.String("line_no", row.LineNo),
	)

	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLineRequest) (LineResponse, error) {
	lineID, err := uuid.Parse(id)
	if err != nil {
		return LineResponse{}, lineerrors.ErrInvalidLineID
	}

	row, err := s.repo.FindByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LineResponse{}, lineerrors.ErrLineNotFound
		}
		return LineResponse{}, err
	}

	// Partial merge: only supplied fields overwrite.
	if req.LineNo != nil {
		row.LineNo = *req.LineNo
	}
	if req.SapLocation != nil {
		row.SapLocation = *req.SapLocation
	}
	if req.Description != nil {
		row.Description = req.Description
	}
	if req.StandardManpower != nil {
		row.StandardManpower = req.StandardManpower
	}
	if req.TargetUPPH != nil {
		row.TargetUPPH = req.TargetUPPH
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, row); err != nil {
		if isDuplicateLineNo(err) {
			return LineResponse{}, lineerrors.ErrLineNumberExists
		}
		return LineResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*row), nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, activeLinesKey).Err(); err != nil {
		s.logger.Warn("invalidate active lines cache failed", zap.Error(err))
	}
}

func mapToResponse(l ProductionLine) LineResponse {
	return LineResponse{
		ID:               l.ID.String(),
		LineNo:           l.LineNo,
		SapLocation:      l.SapLocation,
		Description:      l.Description,
		StandardManpower: l.StandardManpower,
		TargetUPPH:       l.TargetUPPH,
		IsActive:         l.IsActive,
		CreatedAt:        l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        l.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func isDuplicateLineNo(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
