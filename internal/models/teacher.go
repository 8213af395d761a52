package models

import "fmt"

// TeacherStatus enumerates teacher employment states.
type TeacherStatus string

const (
	TeacherStatusActive   TeacherStatus = "active"
	TeacherStatusInactive TeacherStatus = "inactive"
	TeacherStatusPending  TeacherStatus = "pending"
)

// SessionType distinguishes billable offering categories.
type SessionType string

const (
	SessionTypePrivate SessionType = "private"
	SessionTypeGroup   SessionType = "group"
)

// Qualification is a billable teaching offering owned by a teacher.
// Its id is unique only within the owning teacher's list.
type Qualification struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        SessionType `json:"type"`
	Rate        float64     `json:"rate"`
	Currency    string      `json:"currency"`
	Description string      `json:"description,omitempty"`
}

// ScheduleSlot is a recurring weekly time block assigned to a teacher.
// Times are "HH:MM" in 24-hour notation.
type ScheduleSlot struct {
	ID        string      `json:"id"`
	Day       string      `json:"day"`
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
	Available bool        `json:"available"`
	Type      SessionType `json:"type"`
	Subject   string      `json:"subject,omitempty"`
}

// Hours returns the slot duration in hours. Malformed times yield zero;
// slot times come from forms that already constrain the format.
func (s ScheduleSlot) Hours() float64 {
	start, okStart := parseClock(s.StartTime)
	end, okEnd := parseClock(s.EndTime)
	if !okStart || !okEnd || end <= start {
		return 0
	}
	return float64(end-start) / 60.0
}

func parseClock(raw string) (minutes int, ok bool) {
	var h, m int
	if _, err := fmt.Sscanf(raw, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// Teacher is the canonical instructor record.
type Teacher struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        Address         `json:"address"`
	Status         TeacherStatus   `json:"status"`
	Subjects       []string        `json:"subjects"`
	Experience     int             `json:"experience"`
	Rating         float64         `json:"rating"`
	TotalStudents  int             `json:"total_students"`
	Qualifications []Qualification `json:"qualifications"`
	Schedule       []ScheduleSlot  `json:"schedule"`
}

// WeeklyAvailableHours sums the duration of the teacher's available slots.
func (t Teacher) WeeklyAvailableHours() float64 {
	var total float64
	for _, slot := range t.Schedule {
		if slot.Available {
			total += slot.Hours()
		}
	}
	return total
}

// AverageRate returns the mean hourly rate across qualifications, zero when
// the teacher has none.
func (t Teacher) AverageRate() float64 {
	if len(t.Qualifications) == 0 {
		return 0
	}
	var sum float64
	for _, q := range t.Qualifications {
		sum += q.Rate
	}
	return sum / float64(len(t.Qualifications))
}

// TeacherUpdate carries merge-patch fields for a teacher. Nil fields are
// left untouched.
type TeacherUpdate struct {
	Name           *string          `json:"name"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	Address        *Address         `json:"address"`
	Status         *TeacherStatus   `json:"status"`
	Subjects       *[]string        `json:"subjects"`
	Experience     *int             `json:"experience"`
	Rating         *float64         `json:"rating"`
	TotalStudents  *int             `json:"total_students"`
	Qualifications *[]Qualification `json:"qualifications"`
	Schedule       *[]ScheduleSlot  `json:"schedule"`
}

// TeacherFilter captures list filtering options.
type TeacherFilter struct {
	Search   string
	Status   TeacherStatus
	Subject  string
	Page     int
	PageSize int
}
