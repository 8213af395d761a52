package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edudesk/tms-api/internal/models"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
)

type teacherStore interface {
	Teachers() []models.Teacher
	TeacherByID(id string) (models.Teacher, bool)
	AddTeacher(ctx context.Context, teacher models.Teacher) models.Teacher
	UpdateTeacher(ctx context.Context, id string, upd models.TeacherUpdate) (models.Teacher, bool)
	DeleteTeacher(ctx context.Context, id string) bool
}

// QualificationPayload describes one billable offering on a teacher payload.
type QualificationPayload struct {
	ID          string             `json:"id"`
	Name        string             `json:"name" validate:"required"`
	Type        models.SessionType `json:"type" validate:"required,oneof=private group"`
	Rate        float64            `json:"rate" validate:"gte=0"`
	Currency    string             `json:"currency" validate:"required"`
	Description string             `json:"description"`
}

// ScheduleSlotPayload describes one weekly time block on a teacher payload.
type ScheduleSlotPayload struct {
	ID        string             `json:"id"`
	Day       string             `json:"day" validate:"required"`
	StartTime string             `json:"start_time" validate:"required"`
	EndTime   string             `json:"end_time" validate:"required"`
	Available bool               `json:"available"`
	Type      models.SessionType `json:"type" validate:"required,oneof=private group"`
	Subject   string             `json:"subject"`
}

// CreateTeacherRequest captures the teacher creation payload.
type CreateTeacherRequest struct {
	Name           string                 `json:"name" validate:"required"`
	Email          string                 `json:"email" validate:"required,email"`
	Phone          string                 `json:"phone"`
	Address        models.Address         `json:"address"`
	Status         models.TeacherStatus   `json:"status" validate:"omitempty,oneof=active inactive pending"`
	Subjects       []string               `json:"subjects"`
	Experience     int                    `json:"experience" validate:"gte=0"`
	Rating         float64                `json:"rating" validate:"gte=0,lte=5"`
	TotalStudents  int                    `json:"total_students" validate:"gte=0"`
	Qualifications []QualificationPayload `json:"qualifications" validate:"dive"`
	Schedule       []ScheduleSlotPayload  `json:"schedule" validate:"dive"`
}

// UpdateTeacherRequest carries partial teacher updates. Absent fields stay
// untouched.
type UpdateTeacherRequest struct {
	Name           *string                 `json:"name" validate:"omitempty,min=1"`
	Email          *string                 `json:"email" validate:"omitempty,email"`
	Phone          *string                 `json:"phone"`
	Address        *models.Address         `json:"address"`
	Status         *models.TeacherStatus   `json:"status" validate:"omitempty,oneof=active inactive pending"`
	Subjects       *[]string               `json:"subjects"`
	Experience     *int                    `json:"experience" validate:"omitempty,gte=0"`
	Rating         *float64                `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalStudents  *int                    `json:"total_students" validate:"omitempty,gte=0"`
	Qualifications *[]QualificationPayload `json:"qualifications" validate:"omitempty,dive"`
	Schedule       *[]ScheduleSlotPayload  `json:"schedule" validate:"omitempty,dive"`
}

// TeacherService coordinates teacher roster operations.
type TeacherService struct {
	store     teacherStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs TeacherService.
func NewTeacherService(store teacherStore, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{store: store, validator: validate, logger: logger}
}

// List returns teachers matching the filter with pagination metadata.
func (s *TeacherService) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, *models.Pagination, error) {
	all := s.store.Teachers()
	matched := make([]models.Teacher, 0, len(all))
	for _, t := range all {
		if matchesTeacher(t, filter) {
			matched = append(matched, t)
		}
	}
	teachers, pagination := paginate(matched, filter.Page, filter.PageSize)
	return teachers, pagination, nil
}

// Get returns a single teacher.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, ok := s.store.TeacherByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return &teacher, nil
}

// Create adds a new teacher to the roster.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	status := req.Status
	if status == "" {
		status = models.TeacherStatusActive
	}
	teacher := s.store.AddTeacher(ctx, models.Teacher{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Status:         status,
		Subjects:       req.Subjects,
		Experience:     req.Experience,
		Rating:         req.Rating,
		TotalStudents:  req.TotalStudents,
		Qualifications: toQualifications(req.Qualifications),
		Schedule:       toScheduleSlots(req.Schedule),
	})
	s.logger.Info("teacher created", zap.String("teacher_id", teacher.ID))
	return &teacher, nil
}

// Update applies a partial update to a teacher.
func (s *TeacherService) Update(ctx context.Context, id string, req UpdateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	upd := models.TeacherUpdate{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Status:        req.Status,
		Subjects:      req.Subjects,
		Experience:    req.Experience,
		Rating:        req.Rating,
		TotalStudents: req.TotalStudents,
	}
	if req.Qualifications != nil {
		quals := toQualifications(*req.Qualifications)
		upd.Qualifications = &quals
	}
	if req.Schedule != nil {
		slots := toScheduleSlots(*req.Schedule)
		upd.Schedule = &slots
	}
	teacher, ok := s.store.UpdateTeacher(ctx, id, upd)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return &teacher, nil
}

// Delete removes a teacher and its dependent meetings and leave requests.
func (s *TeacherService) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteTeacher(ctx, id) {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	s.logger.Info("teacher deleted", zap.String("teacher_id", id))
	return nil
}

func matchesTeacher(t models.Teacher, f models.TeacherFilter) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Subject != "" && !containsFold(t.Subjects, f.Subject) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Name), needle) &&
			!strings.Contains(strings.ToLower(t.Email), needle) {
			return false
		}
	}
	return true
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func toQualifications(payloads []QualificationPayload) []models.Qualification {
	quals := make([]models.Qualification, len(payloads))
	for i, p := range payloads {
		quals[i] = models.Qualification{
			ID:          p.ID,
			Name:        p.Name,
			Type:        p.Type,
			Rate:        p.Rate,
			Currency:    p.Currency,
			Description: p.Description,
		}
	}
	return quals
}

func toScheduleSlots(payloads []ScheduleSlotPayload) []models.ScheduleSlot {
	slots := make([]models.ScheduleSlot, len(payloads))
	for i, p := range payloads {
		slots[i] = models.ScheduleSlot{
			ID:        p.ID,
			Day:       p.Day,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
			Available: p.Available,
			Type:      p.Type,
			Subject:   p.Subject,
		}
	}
	return slots
}
