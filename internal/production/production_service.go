package production

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/authz"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/domain"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/events"
	productionerrors "github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/production/errors"
)

// EventPublisher pushes a changed record to live-update subscribers.
// Publishing is fire-and-forget: the write path never waits on it and never
// fails because of it.
type EventPublisher interface {
	PublishRecordChanged(ctx context.Context, event events.RecordEvent) error
}

type Service interface {
	List(ctx context.Context, f Filter) ([]RecordResponse, error)
	Get(ctx context.Context, id string) (RecordResponse, error)
	Create(ctx context.Context, principal domain.Principal, req CreateRecordRequest) (RecordResponse, error)
	Update(ctx context.Context, principal domain.Principal, id string, req UpdateRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	policy    authz.Policy
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(repo Repository, policy authz.Policy, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("production.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("production.service")
	}
	return &service{
		repo:      repo,
		policy:    policy,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) List(ctx context.Context, f Filter) ([]RecordResponse, error) {
	rows, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	resp := make([]RecordResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, id string) (RecordResponse, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return RecordResponse{}, productionerrors.ErrInvalidRecordID
	}

	rec, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, productionerrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) Create(ctx context.Context, principal domain.Principal, req CreateRecordRequest) (RecordResponse, error) {
	creatorID, err := uuid.Parse(principal.ID)
	if err != nil {
		return RecordResponse{}, productionerrors.ErrInvalidRecorderID
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date, err = parseDate(*req.Date)
		if err != nil {
			return RecordResponse{}, productionerrors.ErrInvalidDate
		}
	}

	rec := &ProductionRecord{
		ID:               uuid.New(),
		LineNo:           req.LineNo,
		SapLocation:      req.SapLocation,
		ModelName:        req.ModelName,
		PlanQty:          *req.PlanQty,
		ActualQty:        *req.ActualQty,
		TargetUPPH:       req.TargetUPPH,
		ActualUPPH:       req.ActualUPPH,
		StandardManpower: req.StandardManpower,
		ActualManpower:   req.ActualManpower,
		FPYPercentage:    req.FPYPercentage,
		RTYPercentage:    req.RTYPercentage,
		OSDValue:         req.OSDValue,
		OSDPercentage:    req.OSDPercentage,
		ShiftName:        req.ShiftName,
		Date:             date,
		RecordedBy:       creatorID,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("create record persist failed", zap.Error(err))
		return RecordResponse{}, err
	}

	resp := mapToResponse(*rec)
	s.broadcast(events.TypeRecordCreated, resp)

	s.logger.Info("production record created",
		zap.String("record_id", rec.ID.String()),
		zap.String("line_no", rec.LineNo),
	)

	return resp, nil
}

func (s *service) Update(ctx context.Context, principal domain.Principal, id string, req UpdateRecordRequest) (RecordResponse, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return RecordResponse{}, productionerrors.ErrInvalidRecordID
	}

	rec, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, productionerrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}

	// Admins update any record, everyone else only their own.
	if !s.policy.CanModifyRecord(principal, rec.RecordedBy.String()) {
		return RecordResponse{}, productionerrors.ErrNotRecordOwner
	}

	if req.LineNo != nil {
		rec.LineNo = *req.LineNo
	}
	if req.SapLocation != nil {
		rec.SapLocation = req.SapLocation
	}
	if req.ModelName != nil {
		rec.ModelName = *req.ModelName
	}
	if req.PlanQty != nil {
		rec.PlanQty = *req.PlanQty
	}
	if req.ActualQty != nil {
		rec.ActualQty = *req.ActualQty
	}
	if req.TargetUPPH != nil {
		rec.TargetUPPH = req.TargetUPPH
	}
	if req.ActualUPPH != nil {
		rec.ActualUPPH = req.ActualUPPH
	}
	if req.StandardManpower != nil {
		rec.StandardManpower = req.StandardManpower
	}
	if req.ActualManpower != nil {
		rec.ActualManpower = req.ActualManpower
	}
	if req.FPYPercentage != nil {
		rec.FPYPercentage = req.FPYPercentage
	}
	if req.RTYPercentage != nil {
		rec.RTYPercentage = req.RTYPercentage
	}
	if req.OSDValue != nil {
		rec.OSDValue = req.OSDValue
	}
	if req.OSDPercentage != nil {
		rec.OSDPercentage = req.OSDPercentage
	}
	if req.ShiftName != nil {
		rec.ShiftName = req.ShiftName
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return RecordResponse{}, productionerrors.ErrInvalidDate
		}
		rec.Date = date
	}

	rec.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, rec); err != nil {
		s.logger.Error("update record persist failed", zap.Error(err))
		return RecordResponse{}, err
	}

	resp := mapToResponse(*rec)
	s.broadcast(events.TypeRecordUpdated, resp)

	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return productionerrors.ErrInvalidRecordID
	}

	if err := s.repo.Delete(ctx, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return productionerrors.ErrRecordNotFound
		}
		return err
	}

	s.logger.Info("production record deleted", zap.String("record_id", id))
	return nil
}

// broadcast hands the changed record to the fan-out without awaiting it.
// Failures are logged and swallowed; the originating write already succeeded.
func (s *service) broadcast(eventType string, resp RecordResponse) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("marshal record event failed", zap.Error(err))
		return
	}

	event := events.RecordEvent{
		EventType:  eventType,
		RecordID:   resp.ID,
		OccurredAt: time.Now().UTC(),
		Record:     payload,
	}

	go func() {
		if err := s.publisher.PublishRecordChanged(context.Background(), event); err != nil {
			s.logger.Warn("publish record event failed",
				zap.String("record_id", event.RecordID),
				zap.Error(err),
			)
		}
	}()
}

func mapToResponse(rec ProductionRecord) RecordResponse {
	resp := RecordResponse{
		ID:               rec.ID.String(),
		LineNo:           rec.LineNo,
		SapLocation:      rec.SapLocation,
		ModelName:        rec.ModelName,
		PlanQty:          rec.PlanQty,
		ActualQty:        rec.ActualQty,
		Variance:         rec.ActualQty - rec.PlanQty,
		TargetUPPH:       rec.TargetUPPH,
		ActualUPPH:       rec.ActualUPPH,
		StandardManpower: rec.StandardManpower,
		ActualManpower:   rec.ActualManpower,
		FPYPercentage:    rec.FPYPercentage,
		RTYPercentage:    rec.RTYPercentage,
		OSDValue:         rec.OSDValue,
		OSDPercentage:    rec.OSDPercentage,
		ShiftName:        rec.ShiftName,
		Date:             rec.Date.UTC().Format(time.RFC3339),
		CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        rec.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if rec.StandardManpower != nil && rec.ActualManpower != nil {
		v := *rec.ActualManpower - *rec.StandardManpower
		resp.ManpowerVariance = &v
	}

	if rec.Recorder != nil {
		resp.RecordedBy = &RecorderResponse{
			ID:    rec.Recorder.ID.String(),
			Name:  rec.Recorder.Name,
			Email: rec.Recorder.Email,
		}
	} else if rec.RecordedBy != uuid.Nil {
		resp.RecordedBy = &RecorderResponse{ID: rec.RecordedBy.String()}
	}

	return resp
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
