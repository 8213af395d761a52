package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edudesk/tms-api/internal/models"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
)

type studentStore interface {
	Students() []models.Student
	StudentByID(id string) (models.Student, bool)
	AddStudent(ctx context.Context, student models.Student) models.Student
	UpdateStudent(ctx context.Context, id string, upd models.StudentUpdate) (models.Student, bool)
	DeleteStudent(ctx context.Context, id string) bool
}

// CreateStudentRequest captures the student creation payload.
type CreateStudentRequest struct {
	Name           string               `json:"name" validate:"required"`
	Email          string               `json:"email" validate:"required,email"`
	Phone          string               `json:"phone"`
	Grade          string               `json:"grade"`
	Subjects       []string             `json:"subjects"`
	EnrollmentDate string               `json:"enrollment_date"`
	Status         models.StudentStatus `json:"status" validate:"omitempty,oneof=active inactive graduated"`
	GPA            float64              `json:"gpa" validate:"gte=0,lte=4"`
	Address        models.Address       `json:"address"`
	ParentContact  models.ContactPerson `json:"parent_contact"`
}

// UpdateStudentRequest carries partial student updates.
type UpdateStudentRequest struct {
	Name           *string               `json:"name" validate:"omitempty,min=1"`
	Email          *string               `json:"email" validate:"omitempty,email"`
	Phone          *string               `json:"phone"`
	Grade          *string               `json:"grade"`
	Subjects       *[]string             `json:"subjects"`
	EnrollmentDate *string               `json:"enrollment_date"`
	Status         *models.StudentStatus `json:"status" validate:"omitempty,oneof=active inactive graduated"`
	GPA            *float64              `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Address        *models.Address       `json:"address"`
	ParentContact  *models.ContactPerson `json:"parent_contact"`
}

// StudentService coordinates student roster operations.
type StudentService struct {
	store     studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(store studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, validator: validate, logger: logger}
}

// List returns students matching the filter with pagination metadata.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	all := s.store.Students()
	matched := make([]models.Student, 0, len(all))
	for _, st := range all {
		if matchesStudent(st, filter) {
			matched = append(matched, st)
		}
	}
	students, pagination := paginate(matched, filter.Page, filter.PageSize)
	return students, pagination, nil
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, ok := s.store.StudentByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &student, nil
}

// Create adds a new student to the roster.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	status := req.Status
	if status == "" {
		status = models.StudentStatusActive
	}
	student := s.store.AddStudent(ctx, models.Student{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Grade:          req.Grade,
		Subjects:       req.Subjects,
		EnrollmentDate: req.EnrollmentDate,
		Status:         status,
		GPA:            req.GPA,
		Address:        req.Address,
		ParentContact:  req.ParentContact,
	})
	s.logger.Info("student created", zap.String("student_id", student.ID))
	return &student, nil
}

// Update applies a partial update to a student.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student, ok := s.store.UpdateStudent(ctx, id, models.StudentUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Grade:          req.Grade,
		Subjects:       req.Subjects,
		EnrollmentDate: req.EnrollmentDate,
		Status:         req.Status,
		GPA:            req.GPA,
		Address:        req.Address,
		ParentContact:  req.ParentContact,
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &student, nil
}

// Delete removes a student from the roster.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteStudent(ctx, id) {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return nil
}

func matchesStudent(st models.Student, f models.StudentFilter) bool {
	if f.Status != "" && st.Status != f.Status {
		return false
	}
	if f.Grade != "" && !strings.EqualFold(st.Grade, f.Grade) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(st.Name), needle) &&
			!strings.Contains(strings.ToLower(st.Email), needle) {
			return false
		}
	}
	return true
}
