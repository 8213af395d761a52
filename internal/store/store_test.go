package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/tms-api/internal/models"
	"github.com/edudesk/tms-api/internal/snapshot"
)

type memorySnapshots struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{data: make(map[string][]byte)}
}

func (m *memorySnapshots) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.data[key] = buf
	return nil
}

func (m *memorySnapshots) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, snapshot.ErrNotFound
	}
	return data, nil
}

func newTestStore(t *testing.T) (*Store, *memorySnapshots) {
	t.Helper()
	backend := newMemorySnapshots()
	counter := 0
	s := New(backend,
		WithClock(func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }),
		WithIDGenerator(func() string {
			counter++
			return fmt.Sprintf("gen-%d", counter)
		}),
	)
	return s, backend
}

func TestNewSeedsCollections(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Len(t, s.Teachers(), 8)
	assert.Len(t, s.Courses(), 8)
	assert.Len(t, s.Students(), 5)
	assert.Len(t, s.Meetings(), 6)
	assert.Len(t, s.Leaves(), 8)

	report := s.Analytics()
	assert.Len(t, report.Teachers, 8)
	assert.NotEmpty(t, report.Subjects)
}

func TestAddTeacherGeneratesNestedIDs(t *testing.T) {
	s, backend := newTestStore(t)

	created := s.AddTeacher(context.Background(), models.Teacher{
		Name:  "Ms. Joan Baker",
		Email: "joan.baker@school.edu",
		Qualifications: []models.Qualification{
			{Name: "French Conversation", Type: models.SessionTypeGroup, Rate: 22, Currency: "USD"},
		},
		Schedule: []models.ScheduleSlot{
			{Day: "Monday", StartTime: "09:00", EndTime: "11:00", Available: true, Type: models.SessionTypeGroup},
		},
	})

	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.Qualifications[0].ID)
	require.NotEmpty(t, created.Schedule[0].ID)
	assert.Len(t, s.Teachers(), 9)

	got, ok := s.TeacherByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Ms. Joan Baker", got.Name)

	_, err := backend.Load(context.Background(), "tms_teachers")
	assert.NoError(t, err)
}

func TestUpdateTeacherMergesOnlyProvidedFields(t *testing.T) {
	s, _ := newTestStore(t)

	name := "Dr. Sarah Johnson-Lee"
	rating := 4.9
	updated, ok := s.UpdateTeacher(context.Background(), "1", models.TeacherUpdate{
		Name:   &name,
		Rating: &rating,
	})
	require.True(t, ok)
	assert.Equal(t, "Dr. Sarah Johnson-Lee", updated.Name)
	assert.Equal(t, 4.9, updated.Rating)
	assert.Equal(t, "sarah.johnson@school.edu", updated.Email)
	assert.Len(t, updated.Qualifications, 3)
}

func TestUpdateAndDeleteMissingIDsAreNoOps(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	name := "ghost"
	_, ok := s.UpdateTeacher(ctx, "nope", models.TeacherUpdate{Name: &name})
	assert.False(t, ok)
	assert.False(t, s.DeleteTeacher(ctx, "nope"))
	assert.Len(t, s.Teachers(), 8)

	_, ok = s.UpdateCourse(ctx, "nope", models.CourseUpdate{Name: &name})
	assert.False(t, ok)
	assert.False(t, s.DeleteCourse(ctx, "nope"))
	assert.Len(t, s.Courses(), 8)

	_, ok = s.UpdateStudent(ctx, "nope", models.StudentUpdate{Name: &name})
	assert.False(t, ok)
	assert.False(t, s.DeleteStudent(ctx, "nope"))

	_, ok = s.UpdateMeeting(ctx, "nope", models.MeetingUpdate{Title: &name})
	assert.False(t, ok)
	assert.False(t, s.DeleteMeeting(ctx, "nope"))

	_, ok = s.UpdateLeave(ctx, "nope", models.LeaveUpdate{Reason: &name})
	assert.False(t, ok)
	assert.False(t, s.DeleteLeave(ctx, "nope"))
}

func TestDeleteTeacherCascadesMeetingsAndLeaves(t *testing.T) {
	s, _ := newTestStore(t)

	require.True(t, s.DeleteTeacher(context.Background(), "3"))

	assert.Len(t, s.Teachers(), 7)
	_, ok := s.TeacherByID("3")
	assert.False(t, ok)

	meetings := s.Meetings()
	assert.Len(t, meetings, 5)
	for _, m := range meetings {
		assert.NotEqual(t, "3", m.TeacherID)
	}

	leaves := s.Leaves()
	assert.Len(t, leaves, 7)
	for _, l := range leaves {
		assert.NotEqual(t, "3", l.TeacherID)
	}

	// Courses are never cascaded; the orphaned instructor resolves to an
	// empty display name.
	courses := s.Courses()
	assert.Len(t, courses, 8)
	for _, c := range courses {
		if c.InstructorID == "3" {
			assert.Empty(t, c.InstructorName)
		}
	}
}

func TestAddLeaveDefaultsAndForcedFields(t *testing.T) {
	s, _ := newTestStore(t)

	decided := time.Now()
	created := s.AddLeave(context.Background(), models.Leave{
		TeacherID:  "2",
		Type:       models.LeaveTypePersonal,
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-03",
		Days:       99,
		Status:     models.LeaveStatusApproved,
		Reason:     "moving house",
		ApprovedBy: "nobody",
		ApprovedAt: &decided,
	})

	assert.Equal(t, models.LeaveStatusPending, created.Status)
	assert.Equal(t, 3, created.Days)
	assert.Equal(t, "2024-03-01", created.AppliedDate)
	assert.Empty(t, created.ApprovedBy)
	assert.Nil(t, created.ApprovedAt)
	assert.Len(t, s.Leaves(), 9)
}

func TestApproveLeaveStampsDecision(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	approved, err := s.ApproveLeave(ctx, "2", "Principal")
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, approved.Status)
	assert.Equal(t, "Principal", approved.ApprovedBy)
	require.NotNil(t, approved.ApprovedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), *approved.ApprovedAt)

	// Repeat decisions never overwrite the original stamp.
	_, err = s.ApproveLeave(ctx, "2", "HR Manager")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.RejectLeave(ctx, "2", "HR Manager")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.ApproveLeave(ctx, "5", "Principal")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.ApproveLeave(ctx, "missing", "Principal")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectLeaveLeavesPendingView(t *testing.T) {
	s, _ := newTestStore(t)

	pendingBefore := 0
	for _, l := range s.Leaves() {
		if l.Status == models.LeaveStatusPending {
			pendingBefore++
		}
	}
	require.Equal(t, 5, pendingBefore)

	rejected, err := s.RejectLeave(context.Background(), "4", "HR Manager")
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusRejected, rejected.Status)

	pendingAfter := 0
	for _, l := range s.Leaves() {
		if l.Status == models.LeaveStatusPending {
			pendingAfter++
		}
	}
	assert.Equal(t, pendingBefore-1, pendingAfter)
}

func TestUpdateLeaveRecomputesDays(t *testing.T) {
	s, _ := newTestStore(t)

	end := "2024-03-25"
	updated, ok := s.UpdateLeave(context.Background(), "2", models.LeaveUpdate{EndDate: &end})
	require.True(t, ok)
	assert.Equal(t, models.LeaveDays("2024-03-15", "2024-03-25"), updated.Days)
	assert.Equal(t, 11, updated.Days)
}

func TestMeetingTransitions(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	completed, err := s.CompleteMeeting(ctx, "1", "All objectives covered")
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCompleted, completed.Status)
	assert.Equal(t, "All objectives covered", completed.Notes)

	_, err = s.CancelMeeting(ctx, "1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Meeting 2 is seeded completed.
	_, err = s.CompleteMeeting(ctx, "2", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	rescheduled, err := s.RescheduleMeeting(ctx, "3", "2024-03-08", "10:00", "11:00")
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusRescheduled, rescheduled.Status)
	assert.Equal(t, "2024-03-08", rescheduled.Date)
	assert.Equal(t, "10:00", rescheduled.StartTime)

	_, err = s.CompleteMeeting(ctx, "missing", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddMeetingForcesScheduledState(t *testing.T) {
	s, _ := newTestStore(t)

	created := s.AddMeeting(context.Background(), models.Meeting{
		TeacherID: "4",
		Title:     "Equipment Budget Sync",
		Type:      models.MeetingTypeSenior,
		Date:      "2024-03-20",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    models.MeetingStatusCompleted,
	})

	assert.Equal(t, models.MeetingStatusScheduled, created.Status)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), created.CreatedAt)

	view, ok := s.MeetingByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Dr. James Wilson", view.TeacherName)
}

func TestCourseOverCapacityIsAccepted(t *testing.T) {
	s, _ := newTestStore(t)

	enrolled := 31
	updated, ok := s.UpdateCourse(context.Background(), "1", models.CourseUpdate{EnrolledStudents: &enrolled})
	require.True(t, ok)
	assert.Equal(t, 31, updated.EnrolledStudents)
	assert.Equal(t, 30, updated.MaxStudents)
}

func TestSnapshotRoundTrip(t *testing.T) {
	backend := newMemorySnapshots()
	ctx := context.Background()

	first := New(backend)
	first.AddTeacher(ctx, models.Teacher{Name: "Mr. Paul Archer", Email: "paul.archer@school.edu"})
	_, err := first.ApproveLeave(ctx, "2", "Principal")
	require.NoError(t, err)
	require.True(t, first.DeleteStudent(ctx, "5"))

	second := New(backend)
	second.Load(ctx)

	assert.Equal(t, first.Teachers(), second.Teachers())
	assert.Equal(t, first.Students(), second.Students())
	leavesFirst := first.Leaves()
	leavesSecond := second.Leaves()
	require.Equal(t, len(leavesFirst), len(leavesSecond))
	for i := range leavesFirst {
		assert.Equal(t, leavesFirst[i].Status, leavesSecond[i].Status)
		assert.Equal(t, leavesFirst[i].ApprovedBy, leavesSecond[i].ApprovedBy)
	}
}

func TestLoadKeepsSeedsOnBadSnapshot(t *testing.T) {
	backend := newMemorySnapshots()
	require.NoError(t, backend.Save(context.Background(), "tms_teachers", []byte("{not json")))

	s := New(backend)
	s.Load(context.Background())

	assert.Len(t, s.Teachers(), 8)
}

func TestSubscribeDeliversEventsUntilUnsubscribed(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var events []Event
	unsubscribe := s.Subscribe(func(e Event) { events = append(events, e) })

	s.AddStudent(ctx, models.Student{Name: "Noor Haddad", Email: "noor.haddad@student.edu"})
	require.Len(t, events, 1)
	assert.Equal(t, CollectionStudents, events[0].Collection)
	assert.Equal(t, OpAdd, events[0].Op)

	events = nil
	require.True(t, s.DeleteTeacher(ctx, "1"))
	// Teacher delete cascades, one event per touched collection.
	require.Len(t, events, 3)
	assert.Equal(t, CollectionTeachers, events[0].Collection)
	assert.Equal(t, CollectionMeetings, events[1].Collection)
	assert.Equal(t, CollectionLeaves, events[2].Collection)

	unsubscribe()
	events = nil
	s.AddStudent(ctx, models.Student{Name: "Iris Vega", Email: "iris.vega@student.edu"})
	assert.Empty(t, events)
}

func TestAnalyticsAreDeterministic(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.RefreshAnalytics(context.Background())
	second := s.RefreshAnalytics(context.Background())
	assert.Equal(t, first.Teachers, second.Teachers)
	assert.Equal(t, first.Subjects, second.Subjects)

	var sarah models.TeacherAnalytics
	for _, row := range first.Teachers {
		if row.TeacherID == "1" {
			sarah = row
		}
	}
	require.Equal(t, "Dr. Sarah Johnson", sarah.TeacherName)
	// Two available slots (3h + 4h) plus one meeting on record.
	assert.Equal(t, 3, sarah.TotalClasses)
	assert.Equal(t, 3, sarah.UpcomingClasses)
	assert.InDelta(t, 28.0, sarah.CompletedHours, 0.001)
	// 4 weeks x 7 weekly hours x mean rate (45+50+25)/3.
	assert.InDelta(t, 1120.0, sarah.MonthlyEarnings, 0.001)
}

func TestAnalyticsFollowTeacherMutations(t *testing.T) {
	s, _ := newTestStore(t)

	before := s.Analytics()
	require.Len(t, before.Teachers, 8)

	require.True(t, s.DeleteTeacher(context.Background(), "8"))
	after := s.Analytics()
	assert.Len(t, after.Teachers, 7)
	for _, subject := range after.Subjects {
		assert.NotContains(t, subject.Teachers, "Mr. Robert Taylor")
	}
}
