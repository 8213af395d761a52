package models

import "time"

// TeacherAnalytics is a derived per-teacher snapshot. It is never authored
// directly; the store regenerates it from teacher, schedule and meeting data
// whenever the teacher collection changes.
type TeacherAnalytics struct {
	TeacherID       string   `json:"teacher_id"`
	TeacherName     string   `json:"teacher_name"`
	Subjects        []string `json:"subjects"`
	TotalStudents   int      `json:"total_students"`
	TotalClasses    int      `json:"total_classes"`
	AverageRating   float64  `json:"average_rating"`
	CompletedHours  float64  `json:"completed_hours"`
	UpcomingClasses int      `json:"upcoming_classes"`
	MonthlyEarnings float64  `json:"monthly_earnings"`
}

// SubjectStats aggregates teachers by subject.
type SubjectStats struct {
	Subject       string   `json:"subject"`
	TeacherCount  int      `json:"teacher_count"`
	Teachers      []string `json:"teachers"`
	TotalStudents int      `json:"total_students"`
	AverageRating float64  `json:"average_rating"`
}

// AnalyticsReport bundles both derived collections with a generation stamp.
type AnalyticsReport struct {
	Teachers    []TeacherAnalytics `json:"teachers"`
	Subjects    []SubjectStats     `json:"subjects"`
	GeneratedAt time.Time          `json:"generated_at"`
}
