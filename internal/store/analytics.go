package store

import (
	"context"

	"github.com/edudesk/tms-api/internal/models"
)

// Analytics returns the current derived collections.
func (s *Store) Analytics() models.AnalyticsReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report := models.AnalyticsReport{
		Teachers:    make([]models.TeacherAnalytics, len(s.analytics)),
		Subjects:    make([]models.SubjectStats, len(s.subjectStats)),
		GeneratedAt: s.generatedAt,
	}
	copy(report.Teachers, s.analytics)
	copy(report.Subjects, s.subjectStats)
	return report
}

// RefreshAnalytics recomputes the derived collections on demand, persists
// them and notifies subscribers. Teacher mutations refresh implicitly; this
// exists for callers that changed source data out of band (e.g. after a
// bulk snapshot load).
func (s *Store) RefreshAnalytics(ctx context.Context) models.AnalyticsReport {
	s.mu.Lock()
	s.recomputeAndPersistAnalyticsLocked(ctx)
	report := models.AnalyticsReport{
		Teachers:    make([]models.TeacherAnalytics, len(s.analytics)),
		Subjects:    make([]models.SubjectStats, len(s.subjectStats)),
		GeneratedAt: s.generatedAt,
	}
	copy(report.Teachers, s.analytics)
	copy(report.Subjects, s.subjectStats)
	s.mu.Unlock()

	s.notify(
		Event{Collection: CollectionAnalytics, Op: OpRefresh},
		Event{Collection: CollectionSubjectStats, Op: OpRefresh},
	)
	return report
}

func (s *Store) recomputeAndPersistAnalyticsLocked(ctx context.Context) {
	s.recomputeAnalyticsLocked()
	s.persistLocked(ctx, CollectionAnalytics)
	s.persistLocked(ctx, CollectionSubjectStats)
}

// recomputeAnalyticsLocked derives both analytics collections from the
// teacher, schedule and meeting data currently in memory. Every metric is a
// pure function of that data; repeated recomputation over unchanged input
// yields identical output.
func (s *Store) recomputeAnalyticsLocked() {
	analytics := make([]models.TeacherAnalytics, 0, len(s.teachers))

	meetingsByTeacher := make(map[string][]models.Meeting, len(s.teachers))
	for _, m := range s.meetings {
		meetingsByTeacher[m.TeacherID] = append(meetingsByTeacher[m.TeacherID], m)
	}

	for _, t := range s.teachers {
		weekly := t.WeeklyAvailableHours()
		availableSlots := 0
		for _, slot := range t.Schedule {
			if slot.Available {
				availableSlots++
			}
		}

		var completedMeetingHours float64
		scheduledMeetings := 0
		for _, m := range meetingsByTeacher[t.ID] {
			switch m.Status {
			case models.MeetingStatusCompleted:
				completedMeetingHours += m.Hours()
			case models.MeetingStatusScheduled:
				scheduledMeetings++
			}
		}

		analytics = append(analytics, models.TeacherAnalytics{
			TeacherID:       t.ID,
			TeacherName:     t.Name,
			Subjects:        t.Subjects,
			TotalStudents:   t.TotalStudents,
			TotalClasses:    availableSlots + len(meetingsByTeacher[t.ID]),
			AverageRating:   t.Rating,
			CompletedHours:  completedMeetingHours + 4*weekly,
			UpcomingClasses: scheduledMeetings + availableSlots,
			MonthlyEarnings: 4 * weekly * t.AverageRate(),
		})
	}

	type subjectAccum struct {
		teachers []string
		students int
		ratings  float64
	}
	order := make([]string, 0)
	bySubject := make(map[string]*subjectAccum)
	for _, t := range s.teachers {
		for _, subject := range t.Subjects {
			acc, ok := bySubject[subject]
			if !ok {
				acc = &subjectAccum{}
				bySubject[subject] = acc
				order = append(order, subject)
			}
			acc.teachers = append(acc.teachers, t.Name)
			acc.students += t.TotalStudents
			acc.ratings += t.Rating
		}
	}

	stats := make([]models.SubjectStats, 0, len(order))
	for _, subject := range order {
		acc := bySubject[subject]
		stats = append(stats, models.SubjectStats{
			Subject:       subject,
			TeacherCount:  len(acc.teachers),
			Teachers:      acc.teachers,
			TotalStudents: acc.students,
			AverageRating: acc.ratings / float64(len(acc.teachers)),
		})
	}

	s.analytics = analytics
	s.subjectStats = stats
	s.generatedAt = s.now().UTC()
}
