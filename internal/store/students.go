package store

import (
	"context"

	"github.com/edudesk/tms-api/internal/models"
)

// Students returns a copy of the student collection.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// StudentByID returns the student with the given id.
func (s *Store) StudentByID(id string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.studentIndexLocked(id); i >= 0 {
		return s.students[i], true
	}
	return models.Student{}, false
}

func (s *Store) studentIndexLocked(id string) int {
	for i := range s.students {
		if s.students[i].ID == id {
			return i
		}
	}
	return -1
}

// AddStudent appends a new student with a generated id and returns it.
func (s *Store) AddStudent(ctx context.Context, student models.Student) models.Student {
	s.mu.Lock()
	student.ID = s.newID()
	s.students = append(s.students, student)
	s.persistLocked(ctx, CollectionStudents)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionStudents, Op: OpAdd, ID: student.ID})
	return student
}

// UpdateStudent merges non-nil fields into the matching record.
func (s *Store) UpdateStudent(ctx context.Context, id string, upd models.StudentUpdate) (models.Student, bool) {
	s.mu.Lock()
	i := s.studentIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Student{}, false
	}

	st := &s.students[i]
	if upd.Name != nil {
		st.Name = *upd.Name
	}
	if upd.Email != nil {
		st.Email = *upd.Email
	}
	if upd.Phone != nil {
		st.Phone = *upd.Phone
	}
	if upd.Grade != nil {
		st.Grade = *upd.Grade
	}
	if upd.Subjects != nil {
		st.Subjects = *upd.Subjects
	}
	if upd.EnrollmentDate != nil {
		st.EnrollmentDate = *upd.EnrollmentDate
	}
	if upd.Status != nil {
		st.Status = *upd.Status
	}
	if upd.GPA != nil {
		st.GPA = *upd.GPA
	}
	if upd.Address != nil {
		st.Address = *upd.Address
	}
	if upd.ParentContact != nil {
		st.ParentContact = *upd.ParentContact
	}
	updated := *st

	s.persistLocked(ctx, CollectionStudents)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionStudents, Op: OpUpdate, ID: id})
	return updated, true
}

// DeleteStudent removes the matching record, silent no-op when absent.
func (s *Store) DeleteStudent(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.studentIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.students = append(s.students[:i], s.students[i+1:]...)
	s.persistLocked(ctx, CollectionStudents)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionStudents, Op: OpDelete, ID: id})
	return true
}
