package models

import "time"

// MeetingType enumerates administrative meeting categories.
type MeetingType string

const (
	MeetingTypeHR           MeetingType = "hr"
	MeetingTypeSenior       MeetingType = "senior"
	MeetingTypePerformance  MeetingType = "performance"
	MeetingTypeTraining     MeetingType = "training"
	MeetingTypeDisciplinary MeetingType = "disciplinary"
)

// MeetingStatus enumerates meeting lifecycle states. Meetings are created
// in scheduled state and may transition to exactly one of the others.
type MeetingStatus string

const (
	MeetingStatusScheduled   MeetingStatus = "scheduled"
	MeetingStatusCompleted   MeetingStatus = "completed"
	MeetingStatusCancelled   MeetingStatus = "cancelled"
	MeetingStatusRescheduled MeetingStatus = "rescheduled"
)

// MeetingPriority enumerates meeting priorities.
type MeetingPriority string

const (
	MeetingPriorityLow    MeetingPriority = "low"
	MeetingPriorityMedium MeetingPriority = "medium"
	MeetingPriorityHigh   MeetingPriority = "high"
)

// Meeting is a scheduled administrative meeting involving one teacher.
// The teacher is referenced by id only; names are resolved at read time.
type Meeting struct {
	ID        string          `json:"id"`
	TeacherID string          `json:"teacher_id"`
	Title     string          `json:"title"`
	Type      MeetingType     `json:"type"`
	Date      string          `json:"date"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Location  string          `json:"location"`
	Attendees []string        `json:"attendees"`
	Agenda    string          `json:"agenda"`
	Notes     string          `json:"notes,omitempty"`
	Status    MeetingStatus   `json:"status"`
	Priority  MeetingPriority `json:"priority"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}

// MeetingView is a meeting joined with its resolved teacher name.
type MeetingView struct {
	Meeting
	TeacherName string `json:"teacher_name"`
}

// MeetingUpdate carries merge-patch fields for a meeting.
type MeetingUpdate struct {
	Title     *string          `json:"title"`
	Type      *MeetingType     `json:"type"`
	Date      *string          `json:"date"`
	StartTime *string          `json:"start_time"`
	EndTime   *string          `json:"end_time"`
	Location  *string          `json:"location"`
	Attendees *[]string        `json:"attendees"`
	Agenda    *string          `json:"agenda"`
	Notes     *string          `json:"notes"`
	Priority  *MeetingPriority `json:"priority"`
}

// MeetingFilter captures list filtering options.
type MeetingFilter struct {
	TeacherID string
	Status    MeetingStatus
	Type      MeetingType
	Priority  MeetingPriority
	Search    string
	Page      int
	PageSize  int
}

// Hours returns the meeting duration in hours, zero for malformed times.
func (m Meeting) Hours() float64 {
	return ScheduleSlot{StartTime: m.StartTime, EndTime: m.EndTime}.Hours()
}
