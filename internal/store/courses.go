package store

import (
	"context"

	"github.com/edudesk/tms-api/internal/models"
)

// Courses returns a copy of the course collection with resolved instructor
// names.
func (s *Store) Courses() []models.CourseView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CourseView, len(s.courses))
	for i, c := range s.courses {
		out[i] = models.CourseView{Course: c, InstructorName: s.teacherNameLocked(c.InstructorID)}
	}
	return out
}

// CourseByID returns the course with the given id, instructor name resolved.
func (s *Store) CourseByID(id string) (models.CourseView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.courseIndexLocked(id); i >= 0 {
		c := s.courses[i]
		return models.CourseView{Course: c, InstructorName: s.teacherNameLocked(c.InstructorID)}, true
	}
	return models.CourseView{}, false
}

func (s *Store) courseIndexLocked(id string) int {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return i
		}
	}
	return -1
}

// AddCourse appends a new course with a generated id and returns it.
func (s *Store) AddCourse(ctx context.Context, course models.Course) models.Course {
	s.mu.Lock()
	course.ID = s.newID()
	s.courses = append(s.courses, course)
	s.persistLocked(ctx, CollectionCourses)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionCourses, Op: OpAdd, ID: course.ID})
	return course
}

// UpdateCourse merges non-nil fields into the matching record. Enrollment
// beyond capacity is accepted; the store does not enforce that invariant.
func (s *Store) UpdateCourse(ctx context.Context, id string, upd models.CourseUpdate) (models.Course, bool) {
	s.mu.Lock()
	i := s.courseIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Course{}, false
	}

	c := &s.courses[i]
	if upd.Code != nil {
		c.Code = *upd.Code
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Credits != nil {
		c.Credits = *upd.Credits
	}
	if upd.Duration != nil {
		c.Duration = *upd.Duration
	}
	if upd.Level != nil {
		c.Level = *upd.Level
	}
	if upd.Category != nil {
		c.Category = *upd.Category
	}
	if upd.InstructorID != nil {
		c.InstructorID = *upd.InstructorID
	}
	if upd.MaxStudents != nil {
		c.MaxStudents = *upd.MaxStudents
	}
	if upd.EnrolledStudents != nil {
		c.EnrolledStudents = *upd.EnrolledStudents
	}
	if upd.Fee != nil {
		c.Fee = *upd.Fee
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	updated := *c

	s.persistLocked(ctx, CollectionCourses)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionCourses, Op: OpUpdate, ID: id})
	return updated, true
}

// DeleteCourse removes the matching record, silent no-op when absent.
func (s *Store) DeleteCourse(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.courseIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.courses = append(s.courses[:i], s.courses[i+1:]...)
	s.persistLocked(ctx, CollectionCourses)
	s.mu.Unlock()

	s.notify(Event{Collection: CollectionCourses, Op: OpDelete, ID: id})
	return true
}
