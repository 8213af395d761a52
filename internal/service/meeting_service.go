package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edudesk/tms-api/internal/models"
	"github.com/edudesk/tms-api/internal/store"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
)

type meetingStore interface {
	Meetings() []models.MeetingView
	MeetingByID(id string) (models.MeetingView, bool)
	AddMeeting(ctx context.Context, meeting models.Meeting) models.Meeting
	UpdateMeeting(ctx context.Context, id string, upd models.MeetingUpdate) (models.Meeting, bool)
	DeleteMeeting(ctx context.Context, id string) bool
	CompleteMeeting(ctx context.Context, id, notes string) (models.Meeting, error)
	CancelMeeting(ctx context.Context, id string) (models.Meeting, error)
	RescheduleMeeting(ctx context.Context, id, date, startTime, endTime string) (models.Meeting, error)
	TeacherByID(id string) (models.Teacher, bool)
	TeacherName(id string) string
}

// CreateMeetingRequest captures the meeting scheduling payload.
type CreateMeetingRequest struct {
	TeacherID string                 `json:"teacher_id" validate:"required"`
	Title     string                 `json:"title" validate:"required"`
	Type      models.MeetingType     `json:"type" validate:"required,oneof=hr senior performance training disciplinary"`
	Date      string                 `json:"date" validate:"required"`
	StartTime string                 `json:"start_time" validate:"required"`
	EndTime   string                 `json:"end_time" validate:"required"`
	Location  string                 `json:"location"`
	Attendees []string               `json:"attendees"`
	Agenda    string                 `json:"agenda"`
	Priority  models.MeetingPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateMeetingRequest carries partial meeting updates. Status is excluded;
// lifecycle changes go through the transition endpoints.
type UpdateMeetingRequest struct {
	Title     *string                 `json:"title" validate:"omitempty,min=1"`
	Type      *models.MeetingType     `json:"type" validate:"omitempty,oneof=hr senior performance training disciplinary"`
	Date      *string                 `json:"date"`
	StartTime *string                 `json:"start_time"`
	EndTime   *string                 `json:"end_time"`
	Location  *string                 `json:"location"`
	Attendees *[]string               `json:"attendees"`
	Agenda    *string                 `json:"agenda"`
	Notes     *string                 `json:"notes"`
	Priority  *models.MeetingPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// CompleteMeetingRequest carries optional outcome notes.
type CompleteMeetingRequest struct {
	Notes string `json:"notes"`
}

// RescheduleMeetingRequest carries the replacement slot.
type RescheduleMeetingRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// MeetingService coordinates administrative meeting operations.
type MeetingService struct {
	store     meetingStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMeetingService constructs MeetingService.
func NewMeetingService(store meetingStore, validate *validator.Validate, logger *zap.Logger) *MeetingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{store: store, validator: validate, logger: logger}
}

// List returns meetings matching the filter with pagination metadata.
func (s *MeetingService) List(ctx context.Context, filter models.MeetingFilter) ([]models.MeetingView, *models.Pagination, error) {
	all := s.store.Meetings()
	matched := make([]models.MeetingView, 0, len(all))
	for _, m := range all {
		if matchesMeeting(m, filter) {
			matched = append(matched, m)
		}
	}
	meetings, pagination := paginate(matched, filter.Page, filter.PageSize)
	return meetings, pagination, nil
}

// Get returns a single meeting with its resolved teacher name.
func (s *MeetingService) Get(ctx context.Context, id string) (*models.MeetingView, error) {
	meeting, ok := s.store.MeetingByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
	}
	return &meeting, nil
}

// Create schedules a new meeting for an existing teacher. The actor from the
// request context becomes createdBy.
func (s *MeetingService) Create(ctx context.Context, req CreateMeetingRequest, createdBy string) (*models.MeetingView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting payload")
	}
	if _, ok := s.store.TeacherByID(req.TeacherID); !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown teacher")
	}
	priority := req.Priority
	if priority == "" {
		priority = models.MeetingPriorityMedium
	}
	meeting := s.store.AddMeeting(ctx, models.Meeting{
		TeacherID: req.TeacherID,
		Title:     req.Title,
		Type:      req.Type,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Attendees: req.Attendees,
		Agenda:    req.Agenda,
		Priority:  priority,
		CreatedBy: createdBy,
	})
	s.logger.Info("meeting scheduled",
		zap.String("meeting_id", meeting.ID), zap.String("teacher_id", meeting.TeacherID))
	return &models.MeetingView{Meeting: meeting, TeacherName: s.store.TeacherName(meeting.TeacherID)}, nil
}

// Update applies a partial update to a meeting.
func (s *MeetingService) Update(ctx context.Context, id string, req UpdateMeetingRequest) (*models.MeetingView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting payload")
	}
	meeting, ok := s.store.UpdateMeeting(ctx, id, models.MeetingUpdate{
		Title:     req.Title,
		Type:      req.Type,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		Attendees: req.Attendees,
		Agenda:    req.Agenda,
		Notes:     req.Notes,
		Priority:  req.Priority,
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
	}
	return &models.MeetingView{Meeting: meeting, TeacherName: s.store.TeacherName(meeting.TeacherID)}, nil
}

// Delete removes a meeting.
func (s *MeetingService) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteMeeting(ctx, id) {
		return appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
	}
	return nil
}

// Complete marks a scheduled meeting as held.
func (s *MeetingService) Complete(ctx context.Context, id string, req CompleteMeetingRequest) (*models.MeetingView, error) {
	meeting, err := s.store.CompleteMeeting(ctx, id, req.Notes)
	if err != nil {
		return nil, s.mapTransitionErr(err, "meeting")
	}
	return &models.MeetingView{Meeting: meeting, TeacherName: s.store.TeacherName(meeting.TeacherID)}, nil
}

// Cancel marks a scheduled meeting as cancelled.
func (s *MeetingService) Cancel(ctx context.Context, id string) (*models.MeetingView, error) {
	meeting, err := s.store.CancelMeeting(ctx, id)
	if err != nil {
		return nil, s.mapTransitionErr(err, "meeting")
	}
	return &models.MeetingView{Meeting: meeting, TeacherName: s.store.TeacherName(meeting.TeacherID)}, nil
}

// Reschedule moves a scheduled meeting to a new slot.
func (s *MeetingService) Reschedule(ctx context.Context, id string, req RescheduleMeetingRequest) (*models.MeetingView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reschedule payload")
	}
	meeting, err := s.store.RescheduleMeeting(ctx, id, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, s.mapTransitionErr(err, "meeting")
	}
	return &models.MeetingView{Meeting: meeting, TeacherName: s.store.TeacherName(meeting.TeacherID)}, nil
}

func (s *MeetingService) mapTransitionErr(err error, kind string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, kind+" not found")
	case errors.Is(err, store.ErrInvalidTransition):
		return appErrors.Clone(appErrors.ErrConflict, kind+" is not in a transitionable state")
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to transition "+kind)
	}
}

func matchesMeeting(m models.MeetingView, f models.MeetingFilter) bool {
	if f.TeacherID != "" && m.TeacherID != f.TeacherID {
		return false
	}
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.Priority != "" && m.Priority != f.Priority {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(m.Title), needle) &&
			!strings.Contains(strings.ToLower(m.TeacherName), needle) {
			return false
		}
	}
	return true
}
