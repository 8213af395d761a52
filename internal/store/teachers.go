package store

import (
	"context"

	"github.com/edudesk/tms-api/internal/models"
)

// Teachers returns a copy of the teacher collection.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Teacher, len(s.teachers))
	copy(out, s.teachers)
	return out
}

// TeacherByID returns the teacher with the given id.
func (s *Store) TeacherByID(id string) (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.teacherIndexLocked(id); i >= 0 {
		return s.teachers[i], true
	}
	return models.Teacher{}, false
}

// TeacherName resolves a teacher's display name, empty when unknown. Names
// are never denormalized onto meetings, leaves or courses; this lookup is
// the only way a name reaches a read model.
func (s *Store) TeacherName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teacherNameLocked(id)
}

func (s *Store) teacherNameLocked(id string) string {
	if i := s.teacherIndexLocked(id); i >= 0 {
		return s.teachers[i].Name
	}
	return ""
}

func (s *Store) teacherIndexLocked(id string) int {
	for i := range s.teachers {
		if s.teachers[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTeacher appends a new teacher with a generated id and returns it.
// Nested qualification and slot ids are generated when absent; they are
// unique only within the owning teacher's lists.
func (s *Store) AddTeacher(ctx context.Context, teacher models.Teacher) models.Teacher {
	s.mu.Lock()
	teacher.ID = s.newID()
	for i := range teacher.Qualifications {
		if teacher.Qualifications[i].ID == "" {
			teacher.Qualifications[i].ID = s.newID()
		}
	}
	for i := range teacher.Schedule {
		if teacher.Schedule[i].ID == "" {
			teacher.Schedule[i].ID = s.newID()
		}
	}
	s.teachers = append(s.teachers, teacher)
	s.persistLocked(ctx, CollectionTeachers)
	s.recomputeAndPersistAnalyticsLocked(ctx)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionTeachers, Op: OpAdd, ID: teacher.ID})
	return teacher
}

// UpdateTeacher merges non-nil fields into the matching record. A missing
// id is a silent no-op reported through found.
func (s *Store) UpdateTeacher(ctx context.Context, id string, upd models.TeacherUpdate) (models.Teacher, bool) {
	s.mu.Lock()
	i := s.teacherIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Teacher{}, false
	}

	t := &s.teachers[i]
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Email != nil {
		t.Email = *upd.Email
	}
	if upd.Phone != nil {
		t.Phone = *upd.Phone
	}
	if upd.Address != nil {
		t.Address = *upd.Address
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.Subjects != nil {
		t.Subjects = *upd.Subjects
	}
	if upd.Experience != nil {
		t.Experience = *upd.Experience
	}
	if upd.Rating != nil {
		t.Rating = *upd.Rating
	}
	if upd.TotalStudents != nil {
		t.TotalStudents = *upd.TotalStudents
	}
	if upd.Qualifications != nil {
		quals := *upd.Qualifications
		for j := range quals {
			if quals[j].ID == "" {
				quals[j].ID = s.newID()
			}
		}
		t.Qualifications = quals
	}
	if upd.Schedule != nil {
		slots := *upd.Schedule
		for j := range slots {
			if slots[j].ID == "" {
				slots[j].ID = s.newID()
			}
		}
		t.Schedule = slots
	}
	updated := *t

	s.persistLocked(ctx, CollectionTeachers)
	s.recomputeAndPersistAnalyticsLocked(ctx)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionTeachers, Op: OpUpdate, ID: id})
	return updated, true
}

// DeleteTeacher removes the teacher and cascades to every meeting and leave
// referencing it. Courses are not cascaded; they reference the instructor
// by id and resolve to an empty name once the teacher is gone.
func (s *Store) DeleteTeacher(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.teacherIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.teachers = append(s.teachers[:i], s.teachers[i+1:]...)

	meetings := s.meetings[:0]
	for _, m := range s.meetings {
		if m.TeacherID != id {
			meetings = append(meetings, m)
		}
	}
	meetingsRemoved := len(s.meetings) != len(meetings)
	s.meetings = meetings

	leaves := s.leaves[:0]
	for _, l := range s.leaves {
		if l.TeacherID != id {
			leaves = append(leaves, l)
		}
	}
	leavesRemoved := len(s.leaves) != len(leaves)
	s.leaves = leaves

	s.persistLocked(ctx, CollectionTeachers)
	if meetingsRemoved {
		s.persistLocked(ctx, CollectionMeetings)
	}
	if leavesRemoved {
		s.persistLocked(ctx, CollectionLeaves)
	}
	s.recomputeAndPersistAnalyticsLocked(ctx)
	s.mu.Unlock()

	events := []Event{{Collection: CollectionTeachers, Op: OpDelete, ID: id}}
	if meetingsRemoved {
		events = append(events, Event{Collection: CollectionMeetings, Op: OpDelete, ID: id})
	}
	if leavesRemoved {
		events = append(events, Event{Collection: CollectionLeaves, Op: OpDelete, ID: id})
	}
	s.notify(events...)
	return true
}
