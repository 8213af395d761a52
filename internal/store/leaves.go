package store

import (
	"context"

	"github.com/edudesk/tms-api/internal/models"
)

// Leaves returns a copy of the leave collection with resolved teacher
// names.
func (s *Store) Leaves() []models.LeaveView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LeaveView, len(s.leaves))
	for i, l := range s.leaves {
		out[i] = models.LeaveView{Leave: l, TeacherName: s.teacherNameLocked(l.TeacherID)}
	}
	return out
}

// LeaveByID returns the leave with the given id, teacher name resolved.
func (s *Store) LeaveByID(id string) (models.LeaveView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.leaveIndexLocked(id); i >= 0 {
		l := s.leaves[i]
		return models.LeaveView{Leave: l, TeacherName: s.teacherNameLocked(l.TeacherID)}, true
	}
	return models.LeaveView{}, false
}

func (s *Store) leaveIndexLocked(id string) int {
	for i := range s.leaves {
		if s.leaves[i].ID == id {
			return i
		}
	}
	return -1
}

// AddLeave appends a new pending leave with a generated id. The day count
// always comes from models.LeaveDays and the applied date defaults to
// today when the caller left it empty.
func (s *Store) AddLeave(ctx context.Context, leave models.Leave) models.Leave {
	s.mu.Lock()
	leave.ID = s.newID()
	leave.Status = models.LeaveStatusPending
	leave.Days = models.LeaveDays(leave.StartDate, leave.EndDate)
	if leave.AppliedDate == "" {
		leave.AppliedDate = s.now().UTC().Format(models.LeaveDateLayout)
	}
	leave.ApprovedBy = ""
	leave.ApprovedAt = nil
	s.leaves = append(s.leaves, leave)
	s.persistLocked(ctx, CollectionLeaves)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionLeaves, Op: OpAdd, ID: leave.ID})
	return leave
}

// UpdateLeave merges non-nil fields into the matching record. Date changes
// recompute the day count.
func (s *Store) UpdateLeave(ctx context.Context, id string, upd models.LeaveUpdate) (models.Leave, bool) {
	s.mu.Lock()
	i := s.leaveIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Leave{}, false
	}

	l := &s.leaves[i]
	if upd.Type != nil {
		l.Type = *upd.Type
	}
	if upd.StartDate != nil {
		l.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		l.EndDate = *upd.EndDate
	}
	if upd.StartDate != nil || upd.EndDate != nil {
		l.Days = models.LeaveDays(l.StartDate, l.EndDate)
	}
	if upd.Reason != nil {
		l.Reason = *upd.Reason
	}
	if upd.Comments != nil {
		l.Comments = *upd.Comments
	}
	updated := *l

	s.persistLocked(ctx, CollectionLeaves)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionLeaves, Op: OpUpdate, ID: id})
	return updated, true
}

// DeleteLeave removes the matching record, silent no-op when absent.
func (s *Store) DeleteLeave(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.leaveIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.leaves = append(s.leaves[:i], s.leaves[i+1:]...)
	s.persistLocked(ctx, CollectionLeaves)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionLeaves, Op: OpDelete, ID: id})
	return true
}

// ApproveLeave transitions a pending leave to approved, stamping the
// decider and decision time.
func (s *Store) ApproveLeave(ctx context.Context, id, decidedBy string) (models.Leave, error) {
	return s.decideLeave(ctx, id, models.LeaveStatusApproved, decidedBy)
}

// RejectLeave transitions a pending leave to rejected, stamping the
// decider and decision time.
func (s *Store) RejectLeave(ctx context.Context, id, decidedBy string) (models.Leave, error) {
	return s.decideLeave(ctx, id, models.LeaveStatusRejected, decidedBy)
}

// CancelLeave transitions a pending leave to cancelled.
func (s *Store) CancelLeave(ctx context.Context, id string) (models.Leave, error) {
	return s.decideLeave(ctx, id, models.LeaveStatusCancelled, "")
}

// decideLeave applies a guarded status change. Pending is the only state
// that may transition; repeat decisions are conflicts, never silent
// overwrites of an earlier decision stamp.
func (s *Store) decideLeave(ctx context.Context, id string, to models.LeaveStatus, decidedBy string) (models.Leave, error) {
	s.mu.Lock()
	i := s.leaveIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Leave{}, ErrNotFound
	}
	l := &s.leaves[i]
	if l.Status != models.LeaveStatusPending {
		s.mu.Unlock()
		return models.Leave{}, ErrInvalidTransition
	}
	l.Status = to
	if decidedBy != "" {
		decidedAt := s.now().UTC()
		l.ApprovedBy = decidedBy
		l.ApprovedAt = &decidedAt
	}
	updated := *l

	s.persistLocked(ctx, CollectionLeaves)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionLeaves, Op: OpTransition, ID: id})
	return updated, nil
}
