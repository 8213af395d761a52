package service

import (
	"context"
	"fmt"
	"time"

	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/tms-api/internal/models"
	"github.com/edudesk/tms-api/internal/store"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
)

type fakeLeaveStore struct {
	leaves   map[string]models.Leave
	teachers map[string]models.Teacher
	nextID   int
}

func newFakeLeaveStore() *fakeLeaveStore {
	return &fakeLeaveStore{
		leaves:   make(map[string]models.Leave),
		teachers: make(map[string]models.Teacher),
	}
}

func (s *fakeLeaveStore) Leaves() []models.LeaveView {
	out := make([]models.LeaveView, 0, len(s.leaves))
	for _, l := range s.leaves {
		out = append(out, models.LeaveView{Leave: l, TeacherName: s.TeacherName(l.TeacherID)})
	}
	return out
}

func (s *fakeLeaveStore) LeaveByID(id string) (models.LeaveView, bool) {
	l, ok := s.leaves[id]
	if !ok {
		return models.LeaveView{}, false
	}
	return models.LeaveView{Leave: l, TeacherName: s.TeacherName(l.TeacherID)}, true
}

func (s *fakeLeaveStore) AddLeave(_ context.Context, leave models.Leave) models.Leave {
	s.nextID++
	leave.ID = fmt.Sprintf("l-%d", s.nextID)
	leave.Status = models.LeaveStatusPending
	leave.Days = models.LeaveDays(leave.StartDate, leave.EndDate)
	if leave.AppliedDate == "" {
		leave.AppliedDate = time.Now().Format(models.LeaveDateLayout)
	}
	s.leaves[leave.ID] = leave
	return leave
}

func (s *fakeLeaveStore) UpdateLeave(_ context.Context, id string, upd models.LeaveUpdate) (models.Leave, bool) {
	l, ok := s.leaves[id]
	if !ok {
		return models.Leave{}, false
	}
	if upd.Reason != nil {
		l.Reason = *upd.Reason
	}
	s.leaves[id] = l
	return l, true
}

func (s *fakeLeaveStore) DeleteLeave(_ context.Context, id string) bool {
	if _, ok := s.leaves[id]; !ok {
		return false
	}
	delete(s.leaves, id)
	return true
}

func (s *fakeLeaveStore) decide(id, decidedBy string, status models.LeaveStatus) (models.Leave, error) {
	l, ok := s.leaves[id]
	if !ok {
		return models.Leave{}, store.ErrNotFound
	}
	if l.Status != models.LeaveStatusPending {
		return models.Leave{}, store.ErrInvalidTransition
	}
	now := time.Now()
	l.Status = status
	l.ApprovedBy = decidedBy
	l.ApprovedAt = &now
	s.leaves[id] = l
	return l, nil
}

func (s *fakeLeaveStore) ApproveLeave(_ context.Context, id, decidedBy string) (models.Leave, error) {
	return s.decide(id, decidedBy, models.LeaveStatusApproved)
}

func (s *fakeLeaveStore) RejectLeave(_ context.Context, id, decidedBy string) (models.Leave, error) {
	return s.decide(id, decidedBy, models.LeaveStatusRejected)
}

func (s *fakeLeaveStore) CancelLeave(_ context.Context, id string) (models.Leave, error) {
	return s.decide(id, "", models.LeaveStatusCancelled)
}

func (s *fakeLeaveStore) TeacherByID(id string) (models.Teacher, bool) {
	t, ok := s.teachers[id]
	return t, ok
}

func (s *fakeLeaveStore) TeacherName(id string) string {
	return s.teachers[id].Name
}

func TestLeaveServiceCreate(t *testing.T) {
	fake := newFakeLeaveStore()
	fake.teachers["1"] = models.Teacher{ID: "1", Name: "Dr. Sarah Johnson"}
	svc := NewLeaveService(fake, nil, nil)

	created, err := svc.Create(context.Background(), CreateLeaveRequest{
		TeacherID: "1",
		Type:      models.LeaveTypeSick,
		StartDate: "2024-03-15",
		EndDate:   "2024-03-17",
		Reason:    "flu",
	})

	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusPending, created.Status)
	assert.Equal(t, 3, created.Days)
	assert.Equal(t, "Dr. Sarah Johnson", created.TeacherName)
}

func TestLeaveServiceCreateUnknownTeacher(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveStore(), nil, nil)

	_, err := svc.Create(context.Background(), CreateLeaveRequest{
		TeacherID: "missing",
		Type:      models.LeaveTypeSick,
		StartDate: "2024-03-15",
		EndDate:   "2024-03-17",
		Reason:    "flu",
	})

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "unknown teacher", appErr.Message)
}

func TestLeaveServiceCreateRejectsBadDates(t *testing.T) {
	fake := newFakeLeaveStore()
	fake.teachers["1"] = models.Teacher{ID: "1", Name: "Dr. Sarah Johnson"}
	svc := NewLeaveService(fake, nil, nil)

	_, err := svc.Create(context.Background(), CreateLeaveRequest{
		TeacherID: "1",
		Type:      models.LeaveTypeSick,
		StartDate: "15/03/2024",
		EndDate:   "2024-03-17",
		Reason:    "flu",
	})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLeaveServiceApprove(t *testing.T) {
	fake := newFakeLeaveStore()
	fake.teachers["1"] = models.Teacher{ID: "1", Name: "Dr. Sarah Johnson"}
	fake.leaves["l-1"] = models.Leave{ID: "l-1", TeacherID: "1", Status: models.LeaveStatusPending}
	svc := NewLeaveService(fake, nil, nil)
	ctx := context.Background()

	approved, err := svc.Approve(ctx, "l-1", "Principal")
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, approved.Status)
	assert.Equal(t, "Principal", approved.ApprovedBy)

	_, err = svc.Reject(ctx, "l-1", "HR Manager")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)

	_, err = svc.Approve(ctx, "missing", "Principal")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
