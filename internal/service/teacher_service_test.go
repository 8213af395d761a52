package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/tms-api/internal/models"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
)

type fakeTeacherStore struct {
	teachers map[string]models.Teacher
	nextID   int
}

func newFakeTeacherStore(teachers ...models.Teacher) *fakeTeacherStore {
	s := &fakeTeacherStore{teachers: make(map[string]models.Teacher)}
	for _, t := range teachers {
		s.teachers[t.ID] = t
	}
	return s
}

func (s *fakeTeacherStore) Teachers() []models.Teacher {
	out := make([]models.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		out = append(out, t)
	}
	return out
}

func (s *fakeTeacherStore) TeacherByID(id string) (models.Teacher, bool) {
	t, ok := s.teachers[id]
	return t, ok
}

func (s *fakeTeacherStore) AddTeacher(_ context.Context, teacher models.Teacher) models.Teacher {
	s.nextID++
	teacher.ID = fmt.Sprintf("t-%d", s.nextID)
	s.teachers[teacher.ID] = teacher
	return teacher
}

func (s *fakeTeacherStore) UpdateTeacher(_ context.Context, id string, upd models.TeacherUpdate) (models.Teacher, bool) {
	t, ok := s.teachers[id]
	if !ok {
		return models.Teacher{}, false
	}
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	s.teachers[id] = t
	return t, true
}

func (s *fakeTeacherStore) DeleteTeacher(_ context.Context, id string) bool {
	if _, ok := s.teachers[id]; !ok {
		return false
	}
	delete(s.teachers, id)
	return true
}

func TestTeacherServiceCreate(t *testing.T) {
	store := newFakeTeacherStore()
	svc := NewTeacherService(store, nil, nil)

	created, err := svc.Create(context.Background(), CreateTeacherRequest{
		Name:  "Dr. Elena Ruiz",
		Email: "elena.ruiz@school.edu",
		Qualifications: []QualificationPayload{
			{Name: "Algebra Tutoring", Type: models.SessionTypePrivate, Rate: 40, Currency: "USD"},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.TeacherStatusActive, created.Status)
	assert.Len(t, created.Qualifications, 1)
}

func TestTeacherServiceCreateValidation(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherStore(), nil, nil)

	_, err := svc.Create(context.Background(), CreateTeacherRequest{
		Name:  "No Email",
		Email: "not-an-email",
	})

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
}

func TestTeacherServiceListFilters(t *testing.T) {
	store := newFakeTeacherStore(
		models.Teacher{ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@school.edu", Status: models.TeacherStatusActive, Subjects: []string{"Mathematics"}},
		models.Teacher{ID: "2", Name: "Prof. Michael Chen", Email: "michael.chen@school.edu", Status: models.TeacherStatusActive, Subjects: []string{"Physics"}},
		models.Teacher{ID: "3", Name: "Mr. Robert Taylor", Email: "robert.taylor@school.edu", Status: models.TeacherStatusPending, Subjects: []string{"Mathematics"}},
	)
	svc := NewTeacherService(store, nil, nil)
	ctx := context.Background()

	teachers, pagination, err := svc.List(ctx, models.TeacherFilter{Subject: "mathematics", Status: models.TeacherStatusActive})
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Dr. Sarah Johnson", teachers[0].Name)
	assert.Equal(t, 1, pagination.TotalCount)

	teachers, _, err = svc.List(ctx, models.TeacherFilter{Search: "chen"})
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "2", teachers[0].ID)
}

func TestTeacherServiceUpdateNotFound(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherStore(), nil, nil)

	name := "ghost"
	_, err := svc.Update(context.Background(), "missing", UpdateTeacherRequest{Name: &name})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTeacherServiceDelete(t *testing.T) {
	store := newFakeTeacherStore(models.Teacher{ID: "1", Name: "Dr. Sarah Johnson"})
	svc := NewTeacherService(store, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "1"))
	assert.Empty(t, store.Teachers())

	err := svc.Delete(ctx, "1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
