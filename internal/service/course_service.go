package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edudesk/tms-api/internal/models"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
)

type courseStore interface {
	Courses() []models.CourseView
	CourseByID(id string) (models.CourseView, bool)
	AddCourse(ctx context.Context, course models.Course) models.Course
	UpdateCourse(ctx context.Context, id string, upd models.CourseUpdate) (models.Course, bool)
	DeleteCourse(ctx context.Context, id string) bool
	TeacherName(id string) string
}

// CreateCourseRequest captures the course creation payload.
type CreateCourseRequest struct {
	Code             string              `json:"code" validate:"required"`
	Name             string              `json:"name" validate:"required"`
	Description      string              `json:"description"`
	Credits          int                 `json:"credits" validate:"gte=0"`
	Duration         string              `json:"duration"`
	Level            models.CourseLevel  `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Category         string              `json:"category"`
	InstructorID     string              `json:"instructor_id" validate:"required"`
	MaxStudents      int                 `json:"max_students" validate:"gte=0"`
	EnrolledStudents int                 `json:"enrolled_students" validate:"gte=0"`
	Fee              float64             `json:"fee" validate:"gte=0"`
	Status           models.CourseStatus `json:"status" validate:"omitempty,oneof=active inactive completed"`
}

// UpdateCourseRequest carries partial course updates.
type UpdateCourseRequest struct {
	Code             *string              `json:"code" validate:"omitempty,min=1"`
	Name             *string              `json:"name" validate:"omitempty,min=1"`
	Description      *string              `json:"description"`
	Credits          *int                 `json:"credits" validate:"omitempty,gte=0"`
	Duration         *string              `json:"duration"`
	Level            *models.CourseLevel  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Category         *string              `json:"category"`
	InstructorID     *string              `json:"instructor_id" validate:"omitempty,min=1"`
	MaxStudents      *int                 `json:"max_students" validate:"omitempty,gte=0"`
	EnrolledStudents *int                 `json:"enrolled_students" validate:"omitempty,gte=0"`
	Fee              *float64             `json:"fee" validate:"omitempty,gte=0"`
	Status           *models.CourseStatus `json:"status" validate:"omitempty,oneof=active inactive completed"`
}

// CourseService coordinates course catalog operations.
type CourseService struct {
	store     courseStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs CourseService.
func NewCourseService(store courseStore, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{store: store, validator: validate, logger: logger}
}

// List returns courses matching the filter with pagination metadata.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseView, *models.Pagination, error) {
	all := s.store.Courses()
	matched := make([]models.CourseView, 0, len(all))
	for _, c := range all {
		if matchesCourse(c, filter) {
			matched = append(matched, c)
		}
	}
	courses, pagination := paginate(matched, filter.Page, filter.PageSize)
	return courses, pagination, nil
}

// Get returns a single course with its resolved instructor name.
func (s *CourseService) Get(ctx context.Context, id string) (*models.CourseView, error) {
	course, ok := s.store.CourseByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return &course, nil
}

// Create adds a new course to the catalog.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.CourseView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	status := req.Status
	if status == "" {
		status = models.CourseStatusActive
	}
	course := s.store.AddCourse(ctx, models.Course{
		Code:             req.Code,
		Name:             req.Name,
		Description:      req.Description,
		Credits:          req.Credits,
		Duration:         req.Duration,
		Level:            req.Level,
		Category:         req.Category,
		InstructorID:     req.InstructorID,
		MaxStudents:      req.MaxStudents,
		EnrolledStudents: req.EnrolledStudents,
		Fee:              req.Fee,
		Status:           status,
	})
	s.logger.Info("course created", zap.String("course_id", course.ID), zap.String("code", course.Code))
	return &models.CourseView{Course: course, InstructorName: s.store.TeacherName(course.InstructorID)}, nil
}

// Update applies a partial update to a course. Enrollment beyond capacity is
// accepted and logged; the catalog does not enforce the limit.
func (s *CourseService) Update(ctx context.Context, id string, req UpdateCourseRequest) (*models.CourseView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course, ok := s.store.UpdateCourse(ctx, id, models.CourseUpdate{
		Code:             req.Code,
		Name:             req.Name,
		Description:      req.Description,
		Credits:          req.Credits,
		Duration:         req.Duration,
		Level:            req.Level,
		Category:         req.Category,
		InstructorID:     req.InstructorID,
		MaxStudents:      req.MaxStudents,
		EnrolledStudents: req.EnrolledStudents,
		Fee:              req.Fee,
		Status:           req.Status,
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if course.MaxStudents > 0 && course.EnrolledStudents > course.MaxStudents {
		s.logger.Warn("course enrollment exceeds capacity",
			zap.String("course_id", course.ID),
			zap.Int("enrolled", course.EnrolledStudents),
			zap.Int("capacity", course.MaxStudents))
	}
	return &models.CourseView{Course: course, InstructorName: s.store.TeacherName(course.InstructorID)}, nil
}

// Delete removes a course from the catalog.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteCourse(ctx, id) {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return nil
}

func matchesCourse(c models.CourseView, f models.CourseFilter) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Level != "" && c.Level != f.Level {
		return false
	}
	if f.Category != "" && !strings.EqualFold(c.Category, f.Category) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Code), needle) &&
			!strings.Contains(strings.ToLower(c.InstructorName), needle) {
			return false
		}
	}
	return true
}
