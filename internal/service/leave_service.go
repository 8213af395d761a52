package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edudesk/tms-api/internal/models"
	"github.com/edudesk/tms-api/internal/store"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
)

type leaveStore interface {
	Leaves() []models.LeaveView
	LeaveByID(id string) (models.LeaveView, bool)
	AddLeave(ctx context.Context, leave models.Leave) models.Leave
	UpdateLeave(ctx context.Context, id string, upd models.LeaveUpdate) (models.Leave, bool)
	DeleteLeave(ctx context.Context, id string) bool
	ApproveLeave(ctx context.Context, id, decidedBy string) (models.Leave, error)
	RejectLeave(ctx context.Context, id, decidedBy string) (models.Leave, error)
	CancelLeave(ctx context.Context, id string) (models.Leave, error)
	TeacherByID(id string) (models.Teacher, bool)
	TeacherName(id string) string
}

// CreateLeaveRequest captures the leave application payload. Day counts are
// always derived server-side from the date range.
type CreateLeaveRequest struct {
	TeacherID string           `json:"teacher_id" validate:"required"`
	Type      models.LeaveType `json:"type" validate:"required,oneof=sick vacation personal emergency maternity paternity training"`
	StartDate string           `json:"start_date" validate:"required"`
	EndDate   string           `json:"end_date" validate:"required"`
	Reason    string           `json:"reason" validate:"required"`
	Comments  string           `json:"comments"`
}

// UpdateLeaveRequest carries partial leave updates. Status is excluded;
// decisions go through approve/reject/cancel.
type UpdateLeaveRequest struct {
	Type      *models.LeaveType `json:"type" validate:"omitempty,oneof=sick vacation personal emergency maternity paternity training"`
	StartDate *string           `json:"start_date"`
	EndDate   *string           `json:"end_date"`
	Reason    *string           `json:"reason" validate:"omitempty,min=1"`
	Comments  *string           `json:"comments"`
}

// LeaveService coordinates leave request operations.
type LeaveService struct {
	store     leaveStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLeaveService constructs LeaveService.
func NewLeaveService(store leaveStore, validate *validator.Validate, logger *zap.Logger) *LeaveService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaveService{store: store, validator: validate, logger: logger}
}

// List returns leave requests matching the filter with pagination metadata.
func (s *LeaveService) List(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveView, *models.Pagination, error) {
	all := s.store.Leaves()
	matched := make([]models.LeaveView, 0, len(all))
	for _, l := range all {
		if matchesLeave(l, filter) {
			matched = append(matched, l)
		}
	}
	leaves, pagination := paginate(matched, filter.Page, filter.PageSize)
	return leaves, pagination, nil
}

// Get returns a single leave request with its resolved teacher name.
func (s *LeaveService) Get(ctx context.Context, id string) (*models.LeaveView, error) {
	leave, ok := s.store.LeaveByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "leave request not found")
	}
	return &leave, nil
}

// Create files a new pending leave request for an existing teacher.
func (s *LeaveService) Create(ctx context.Context, req CreateLeaveRequest) (*models.LeaveView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave payload")
	}
	if _, ok := s.store.TeacherByID(req.TeacherID); !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown teacher")
	}
	if _, err := time.Parse(models.LeaveDateLayout, req.StartDate); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "start_date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(models.LeaveDateLayout, req.EndDate); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_date must be YYYY-MM-DD")
	}
	leave := s.store.AddLeave(ctx, models.Leave{
		TeacherID: req.TeacherID,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Comments:  req.Comments,
	})
	s.logger.Info("leave requested",
		zap.String("leave_id", leave.ID),
		zap.String("teacher_id", leave.TeacherID),
		zap.Int("days", leave.Days))
	return &models.LeaveView{Leave: leave, TeacherName: s.store.TeacherName(leave.TeacherID)}, nil
}

// Update applies a partial update to a leave request.
func (s *LeaveService) Update(ctx context.Context, id string, req UpdateLeaveRequest) (*models.LeaveView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leave payload")
	}
	leave, ok := s.store.UpdateLeave(ctx, id, models.LeaveUpdate{
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Comments:  req.Comments,
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "leave request not found")
	}
	return &models.LeaveView{Leave: leave, TeacherName: s.store.TeacherName(leave.TeacherID)}, nil
}

// Delete removes a leave request.
func (s *LeaveService) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteLeave(ctx, id) {
		return appErrors.Clone(appErrors.ErrNotFound, "leave request not found")
	}
	return nil
}

// Approve grants a pending leave request. The actor from the request context
// becomes the decision stamp.
func (s *LeaveService) Approve(ctx context.Context, id, decidedBy string) (*models.LeaveView, error) {
	leave, err := s.store.ApproveLeave(ctx, id, decidedBy)
	if err != nil {
		return nil, s.mapDecisionErr(err)
	}
	s.logger.Info("leave approved", zap.String("leave_id", id), zap.String("decided_by", decidedBy))
	return &models.LeaveView{Leave: leave, TeacherName: s.store.TeacherName(leave.TeacherID)}, nil
}

// Reject denies a pending leave request.
func (s *LeaveService) Reject(ctx context.Context, id, decidedBy string) (*models.LeaveView, error) {
	leave, err := s.store.RejectLeave(ctx, id, decidedBy)
	if err != nil {
		return nil, s.mapDecisionErr(err)
	}
	s.logger.Info("leave rejected", zap.String("leave_id", id), zap.String("decided_by", decidedBy))
	return &models.LeaveView{Leave: leave, TeacherName: s.store.TeacherName(leave.TeacherID)}, nil
}

// Cancel withdraws a pending leave request.
func (s *LeaveService) Cancel(ctx context.Context, id string) (*models.LeaveView, error) {
	leave, err := s.store.CancelLeave(ctx, id)
	if err != nil {
		return nil, s.mapDecisionErr(err)
	}
	return &models.LeaveView{Leave: leave, TeacherName: s.store.TeacherName(leave.TeacherID)}, nil
}

func (s *LeaveService) mapDecisionErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, "leave request not found")
	case errors.Is(err, store.ErrInvalidTransition):
		return appErrors.Clone(appErrors.ErrConflict, "leave request already decided")
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to decide leave request")
	}
}

func matchesLeave(l models.LeaveView, f models.LeaveFilter) bool {
	if f.TeacherID != "" && l.TeacherID != f.TeacherID {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	return true
}
