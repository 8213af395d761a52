package models

import "time"

// LeaveType enumerates leave request categories.
type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeVacation  LeaveType = "vacation"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeEmergency LeaveType = "emergency"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePaternity LeaveType = "paternity"
	LeaveTypeTraining  LeaveType = "training"
)

// LeaveStatus enumerates leave lifecycle states. Only pending requests may
// transition; approved, rejected and cancelled are terminal.
type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

// LeaveDateLayout is the wire format for leave dates.
const LeaveDateLayout = "2006-01-02"

// Leave is a teacher's request for approved time off. The teacher is
// referenced by id only; names are resolved at read time.
type Leave struct {
	ID          string      `json:"id"`
	TeacherID   string      `json:"teacher_id"`
	Type        LeaveType   `json:"type"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Days        int         `json:"days"`
	Reason      string      `json:"reason"`
	Status      LeaveStatus `json:"status"`
	AppliedDate string      `json:"applied_date"`
	ApprovedBy  string      `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time  `json:"approved_at,omitempty"`
	Comments    string      `json:"comments,omitempty"`
}

// LeaveView is a leave joined with its resolved teacher name.
type LeaveView struct {
	Leave
	TeacherName string `json:"teacher_name"`
}

// LeaveUpdate carries merge-patch fields for a leave request.
type LeaveUpdate struct {
	Type      *LeaveType `json:"type"`
	StartDate *string    `json:"start_date"`
	EndDate   *string    `json:"end_date"`
	Reason    *string    `json:"reason"`
	Comments  *string    `json:"comments"`
}

// LeaveFilter captures list filtering options.
type LeaveFilter struct {
	TeacherID string
	Status    LeaveStatus
	Type      LeaveType
	Page      int
	PageSize  int
}

// LeaveDays computes the inclusive day count of a leave date range. This is
// the single source of truth for the calculation; every caller goes through
// it. Unparseable or inverted ranges count as a single day, matching the
// most defensive of the behaviours found in the legacy dashboard.
func LeaveDays(startDate, endDate string) int {
	start, errStart := time.Parse(LeaveDateLayout, startDate)
	end, errEnd := time.Parse(LeaveDateLayout, endDate)
	if errStart != nil || errEnd != nil || end.Before(start) {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}
