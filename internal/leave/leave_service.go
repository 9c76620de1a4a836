package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-leave/internal/bootstrap"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	// Delete removes id after confirm agrees. It reports whether a record
	// was actually removed; a declined prompt or unknown id is not an error.
	Delete(ctx context.Context, id string, confirm Confirmer) (bool, error)
	ComputeDuration(ctx context.Context, req DurationRequest) DurationResponse
}

type ServiceConfig struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// NewID defaults to a time-ordered UUIDv7.
	NewID func() string
	// ApplicantName fills records submitted without one.
	ApplicantName string
	Audit         bootstrap.AuditLogger
}

type service struct {
	repo   Repository
	cfg    ServiceConfig
	logger *zap.Logger
}

func NewService(repo Repository, cfg ServiceConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = newRecordID
	}
	if cfg.Audit == nil {
		cfg.Audit = bootstrap.NopAuditLogger{}
	}
	return &service{repo: repo, cfg: cfg, logger: l}
}

func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) List(ctx context.Context) ([]LeaveResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.log(ctx).Error("list leaves failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	if strings.TrimSpace(id) == "" {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*r), nil
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	log := s.log(ctx)
	log.Debug("create leave requested",
		zap.String("type", req.Type),
		zap.String("start_time", req.StartTime),
		zap.String("end_time", req.EndTime),
	)

	r := &LeaveRecord{
		ID:            s.cfg.NewID(),
		Type:          req.Type,
		ApplicantName: req.ApplicantName,
		Destination:   req.Destination,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		ContactPhone:  req.ContactPhone,
		Reason:        req.Reason,
		Attachment:    req.Attachment,
		ApplyTime:     req.ApplyTime,
		ApprovalTime:  req.ApprovalTime,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Duration:      req.Duration,
		Status:        StatusSubmitted,
		ReturnStatus:  req.ReturnStatus,
	}
	if strings.TrimSpace(r.ApplyTime) == "" {
		r.ApplyTime = FormatTimestamp(s.cfg.Now())
	}
	if r.ApplicantName == "" {
		r.ApplicantName = s.cfg.ApplicantName
	}
	if d, ok := ComputeDuration(r.StartTime, r.EndTime); ok {
		r.Duration = d
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if errors.Is(err, ErrDuplicateID) {
			log.Warn("create leave duplicate id", zap.String("leave_id", r.ID))
			return LeaveResponse{}, leaveerrors.ErrDuplicateLeaveID
		}
		log.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("create leave success",
		zap.String("leave_id", r.ID),
		zap.String("apply_time", r.ApplyTime),
	)
	s.cfg.Audit.Log(ctx, bootstrap.AuditLog{
		Action:  events.LeaveCreatedAction,
		Message: "leave record created",
		Meta: map[string]any{
			"leave_id": r.ID,
			"event": events.LeaveCreatedEvent{
				EventType:  events.LeaveCreatedAction,
				LeaveID:    r.ID,
				LeaveType:  r.Type,
				ApplyTime:  r.ApplyTime,
				OccurredAt: s.cfg.Now(),
			},
		},
	})

	return mapToResponse(*r), nil
}

func (s *service) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	log := s.log(ctx)

	if confirm == nil || !confirm.Confirm(ctx, DeletePrompt) {
		log.Debug("delete leave not confirmed", zap.String("leave_id", id))
		return false, nil
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("delete leave failed", zap.String("leave_id", id), zap.Error(err))
		return false, err
	}
	if !removed {
		log.Debug("delete leave no-op, id absent", zap.String("leave_id", id))
		return false, nil
	}

	log.Info("delete leave success", zap.String("leave_id", id))
	s.cfg.Audit.Log(ctx, bootstrap.AuditLog{
		Action:  events.LeaveDeletedAction,
		Message: "leave record deleted",
		Meta: map[string]any{
			"leave_id": id,
			"event": events.LeaveDeletedEvent{
				EventType:  events.LeaveDeletedAction,
				LeaveID:    id,
				OccurredAt: s.cfg.Now(),
			},
		},
	})
	return true, nil
}

func (s *service) ComputeDuration(ctx context.Context, req DurationRequest) DurationResponse {
	d, ok := ComputeDuration(req.StartTime, req.EndTime)
	if !ok {
		s.log(ctx).Debug("duration not computed, malformed timestamp",
			zap.String("start_time", req.StartTime),
			zap.String("end_time", req.EndTime),
		)
		return DurationResponse{}
	}
	return DurationResponse{Duration: d, Computed: true}
}

func mapToResponse(r LeaveRecord) LeaveResponse {
	return LeaveResponse{
		ID:            r.ID,
		Type:          r.Type,
		ApplicantName: r.ApplicantName,
		ApplyTime:     r.ApplyTime,
		ApprovalTime:  r.ApprovalTime,
		Destination:   r.Destination,
		Address:       r.Address,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Duration:      r.Duration,
		ContactPerson: r.ContactPerson,
		ContactPhone:  r.ContactPhone,
		Reason:        r.Reason,
		Status:        r.Status,
		ReturnStatus:  r.ReturnStatus,
		Attachment:    r.Attachment,
		Stamp:         StampFor(r.Status).String(),
	}
}

func mapToListResponse(records []LeaveRecord) []LeaveResponse {
	resp := make([]LeaveResponse, len(records))
	for i, r := range records {
		resp[i] = mapToResponse(r)
	}
	return resp
}
