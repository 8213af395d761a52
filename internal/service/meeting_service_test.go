package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/tms-api/internal/models"
	"github.com/edudesk/tms-api/internal/store"
	appErrors "github.com/edudesk/tms-api/pkg/errors"
)

type fakeMeetingStore struct {
	meetings map[string]models.Meeting
	teachers map[string]models.Teacher
	nextID   int
}

func newFakeMeetingStore() *fakeMeetingStore {
	return &fakeMeetingStore{
		meetings: make(map[string]models.Meeting),
		teachers: make(map[string]models.Teacher),
	}
}

func (s *fakeMeetingStore) Meetings() []models.MeetingView {
	out := make([]models.MeetingView, 0, len(s.meetings))
	for _, m := range s.meetings {
		out = append(out, models.MeetingView{Meeting: m, TeacherName: s.TeacherName(m.TeacherID)})
	}
	return out
}

func (s *fakeMeetingStore) MeetingByID(id string) (models.MeetingView, bool) {
	m, ok := s.meetings[id]
	if !ok {
		return models.MeetingView{}, false
	}
	return models.MeetingView{Meeting: m, TeacherName: s.TeacherName(m.TeacherID)}, true
}

func (s *fakeMeetingStore) AddMeeting(_ context.Context, meeting models.Meeting) models.Meeting {
	s.nextID++
	meeting.ID = fmt.Sprintf("m-%d", s.nextID)
	meeting.Status = models.MeetingStatusScheduled
	s.meetings[meeting.ID] = meeting
	return meeting
}

func (s *fakeMeetingStore) UpdateMeeting(_ context.Context, id string, upd models.MeetingUpdate) (models.Meeting, bool) {
	m, ok := s.meetings[id]
	if !ok {
		return models.Meeting{}, false
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	s.meetings[id] = m
	return m, true
}

func (s *fakeMeetingStore) DeleteMeeting(_ context.Context, id string) bool {
	if _, ok := s.meetings[id]; !ok {
		return false
	}
	delete(s.meetings, id)
	return true
}

func (s *fakeMeetingStore) CompleteMeeting(_ context.Context, id, notes string) (models.Meeting, error) {
	m, ok := s.meetings[id]
	if !ok {
		return models.Meeting{}, store.ErrNotFound
	}
	if m.Status != models.MeetingStatusScheduled && m.Status != models.MeetingStatusRescheduled {
		return models.Meeting{}, store.ErrInvalidTransition
	}
	m.Status = models.MeetingStatusCompleted
	m.Notes = notes
	s.meetings[id] = m
	return m, nil
}

func (s *fakeMeetingStore) CancelMeeting(_ context.Context, id string) (models.Meeting, error) {
	m, ok := s.meetings[id]
	if !ok {
		return models.Meeting{}, store.ErrNotFound
	}
	if m.Status != models.MeetingStatusScheduled && m.Status != models.MeetingStatusRescheduled {
		return models.Meeting{}, store.ErrInvalidTransition
	}
	m.Status = models.MeetingStatusCancelled
	s.meetings[id] = m
	return m, nil
}

func (s *fakeMeetingStore) RescheduleMeeting(_ context.Context, id, date, startTime, endTime string) (models.Meeting, error) {
	m, ok := s.meetings[id]
	if !ok {
		return models.Meeting{}, store.ErrNotFound
	}
	if m.Status != models.MeetingStatusScheduled && m.Status != models.MeetingStatusRescheduled {
		return models.Meeting{}, store.ErrInvalidTransition
	}
	m.Status = models.MeetingStatusRescheduled
	m.Date, m.StartTime, m.EndTime = date, startTime, endTime
	s.meetings[id] = m
	return m, nil
}

func (s *fakeMeetingStore) TeacherByID(id string) (models.Teacher, bool) {
	t, ok := s.teachers[id]
	return t, ok
}

func (s *fakeMeetingStore) TeacherName(id string) string {
	return s.teachers[id].Name
}

func TestMeetingServiceCreate(t *testing.T) {
	fake := newFakeMeetingStore()
	fake.teachers["1"] = models.Teacher{ID: "1", Name: "Dr. Sarah Johnson"}
	svc := NewMeetingService(fake, nil, nil)

	created, err := svc.Create(context.Background(), CreateMeetingRequest{
		TeacherID: "1",
		Title:     "Quarterly Review",
		Type:      models.MeetingTypePerformance,
		Date:      "2024-03-20",
		StartTime: "09:00",
		EndTime:   "10:00",
	}, "Principal")

	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusScheduled, created.Status)
	assert.Equal(t, models.MeetingPriorityMedium, created.Priority)
	assert.Equal(t, "Principal", created.CreatedBy)
	assert.Equal(t, "Dr. Sarah Johnson", created.TeacherName)
}

func TestMeetingServiceCreateUnknownTeacher(t *testing.T) {
	svc := NewMeetingService(newFakeMeetingStore(), nil, nil)

	_, err := svc.Create(context.Background(), CreateMeetingRequest{
		TeacherID: "missing",
		Title:     "Quarterly Review",
		Type:      models.MeetingTypePerformance,
		Date:      "2024-03-20",
		StartTime: "09:00",
		EndTime:   "10:00",
	}, "system")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestMeetingServiceTransitionMapping(t *testing.T) {
	fake := newFakeMeetingStore()
	fake.teachers["1"] = models.Teacher{ID: "1", Name: "Dr. Sarah Johnson"}
	fake.meetings["m-1"] = models.Meeting{ID: "m-1", TeacherID: "1", Status: models.MeetingStatusScheduled}
	svc := NewMeetingService(fake, nil, nil)
	ctx := context.Background()

	completed, err := svc.Complete(ctx, "m-1", CompleteMeetingRequest{Notes: "done"})
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCompleted, completed.Status)
	assert.Equal(t, "done", completed.Notes)

	_, err = svc.Cancel(ctx, "m-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)

	_, err = svc.Complete(ctx, "missing", CompleteMeetingRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestMeetingServiceReschedule(t *testing.T) {
	fake := newFakeMeetingStore()
	fake.teachers["1"] = models.Teacher{ID: "1", Name: "Dr. Sarah Johnson"}
	fake.meetings["m-1"] = models.Meeting{ID: "m-1", TeacherID: "1", Status: models.MeetingStatusScheduled}
	svc := NewMeetingService(fake, nil, nil)
	ctx := context.Background()

	moved, err := svc.Reschedule(ctx, "m-1", RescheduleMeetingRequest{
		Date:      "2024-03-22",
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusRescheduled, moved.Status)
	assert.Equal(t, "2024-03-22", moved.Date)

	_, err = svc.Reschedule(ctx, "m-1", RescheduleMeetingRequest{Date: "2024-03-22"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
