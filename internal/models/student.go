package models

// StudentStatus enumerates student lifecycle states.
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
)

// Student is an enrolled learner record.
type Student struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Grade          string        `json:"grade"`
	Subjects       []string      `json:"subjects"`
	EnrollmentDate string        `json:"enrollment_date"`
	Status         StudentStatus `json:"status"`
	GPA            float64       `json:"gpa"`
	Address        Address       `json:"address"`
	ParentContact  ContactPerson `json:"parent_contact"`
}

// StudentUpdate carries merge-patch fields for a student.
type StudentUpdate struct {
	Name           *string        `json:"name"`
	Email          *string        `json:"email"`
	Phone          *string        `json:"phone"`
	Grade          *string        `json:"grade"`
	Subjects       *[]string      `json:"subjects"`
	EnrollmentDate *string        `json:"enrollment_date"`
	Status         *StudentStatus `json:"status"`
	GPA            *float64       `json:"gpa"`
	Address        *Address       `json:"address"`
	ParentContact  *ContactPerson `json:"parent_contact"`
}

// StudentFilter captures list filtering options.
type StudentFilter struct {
	Search   string
	Status   StudentStatus
	Grade    string
	Page     int
	PageSize int
}
