package store

import (
	"context"

	"github.com/edudesk/tms-api/internal/models"
)

// Meetings returns a copy of the meeting collection with resolved teacher
// names.
func (s *Store) Meetings() []models.MeetingView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MeetingView, len(s.meetings))
	for i, m := range s.meetings {
		out[i] = models.MeetingView{Meeting: m, TeacherName: s.teacherNameLocked(m.TeacherID)}
	}
	return out
}

// MeetingByID returns the meeting with the given id, teacher name resolved.
func (s *Store) MeetingByID(id string) (models.MeetingView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.meetingIndexLocked(id); i >= 0 {
		m := s.meetings[i]
		return models.MeetingView{Meeting: m, TeacherName: s.teacherNameLocked(m.TeacherID)}, true
	}
	return models.MeetingView{}, false
}

func (s *Store) meetingIndexLocked(id string) int {
	for i := range s.meetings {
		if s.meetings[i].ID == id {
			return i
		}
	}
	return -1
}

// AddMeeting appends a new meeting in scheduled state with a generated id
// and a creation stamp, and returns it.
func (s *Store) AddMeeting(ctx context.Context, meeting models.Meeting) models.Meeting {
	s.mu.Lock()
	meeting.ID = s.newID()
	meeting.Status = models.MeetingStatusScheduled
	meeting.CreatedAt = s.now().UTC()
	s.meetings = append(s.meetings, meeting)
	s.persistLocked(ctx, CollectionMeetings)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionMeetings, Op: OpAdd, ID: meeting.ID})
	return meeting
}

// UpdateMeeting merges non-nil fields into the matching record. Status is
// not part of the patch; transitions go through the dedicated operations.
func (s *Store) UpdateMeeting(ctx context.Context, id string, upd models.MeetingUpdate) (models.Meeting, bool) {
	s.mu.Lock()
	i := s.meetingIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Meeting{}, false
	}

	m := &s.meetings[i]
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Type != nil {
		m.Type = *upd.Type
	}
	if upd.Date != nil {
		m.Date = *upd.Date
	}
	if upd.StartTime != nil {
		m.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		m.EndTime = *upd.EndTime
	}
	if upd.Location != nil {
		m.Location = *upd.Location
	}
	if upd.Attendees != nil {
		m.Attendees = *upd.Attendees
	}
	if upd.Agenda != nil {
		m.Agenda = *upd.Agenda
	}
	if upd.Notes != nil {
		m.Notes = *upd.Notes
	}
	if upd.Priority != nil {
		m.Priority = *upd.Priority
	}
	updated := *m

	s.persistLocked(ctx, CollectionMeetings)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionMeetings, Op: OpUpdate, ID: id})
	return updated, true
}

// DeleteMeeting removes the matching record, silent no-op when absent.
func (s *Store) DeleteMeeting(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.meetingIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.meetings = append(s.meetings[:i], s.meetings[i+1:]...)
	s.persistLocked(ctx, CollectionMeetings)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionMeetings, Op: OpDelete, ID: id})
	return true
}

// CompleteMeeting transitions a scheduled meeting to completed, optionally
// attaching outcome notes.
func (s *Store) CompleteMeeting(ctx context.Context, id, notes string) (models.Meeting, error) {
	return s.transitionMeeting(ctx, id, models.MeetingStatusCompleted, func(m *models.Meeting) {
		if notes != "" {
			m.Notes = notes
		}
	})
}

// CancelMeeting transitions a scheduled meeting to cancelled.
func (s *Store) CancelMeeting(ctx context.Context, id string) (models.Meeting, error) {
	return s.transitionMeeting(ctx, id, models.MeetingStatusCancelled, nil)
}

// RescheduleMeeting transitions a scheduled meeting to rescheduled with its
// new date and times.
func (s *Store) RescheduleMeeting(ctx context.Context, id, date, startTime, endTime string) (models.Meeting, error) {
	return s.transitionMeeting(ctx, id, models.MeetingStatusRescheduled, func(m *models.Meeting) {
		m.Date = date
		m.StartTime = startTime
		m.EndTime = endTime
	})
}

// transitionMeeting applies a guarded status change. Only scheduled
// meetings may transition; anything else is a conflict.
func (s *Store) transitionMeeting(ctx context.Context, id string, to models.MeetingStatus, apply func(*models.Meeting)) (models.Meeting, error) {
	s.mu.Lock()
	i := s.meetingIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Meeting{}, ErrNotFound
	}
	m := &s.meetings[i]
	if m.Status != models.MeetingStatusScheduled {
		s.mu.Unlock()
		return models.Meeting{}, ErrInvalidTransition
	}
	m.Status = to
	if apply != nil {
		apply(m)
	}
	updated := *m

	s.persistLocked(ctx, CollectionMeetings)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionMeetings, Op: OpTransition, ID: id})
	return updated, nil
}
