package models

// CourseLevel enumerates course difficulty levels.
type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

// CourseStatus enumerates course lifecycle states.
type CourseStatus string

const (
	CourseStatusActive    CourseStatus = "active"
	CourseStatusInactive  CourseStatus = "inactive"
	CourseStatusCompleted CourseStatus = "completed"
)

// Course is an offered class. The instructor is referenced by teacher id;
// display names are resolved at read time so renames never go stale.
type Course struct {
	ID               string       `json:"id"`
	Code             string       `json:"code"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Credits          int          `json:"credits"`
	Duration         string       `json:"duration"`
	Level            CourseLevel  `json:"level"`
	Category         string       `json:"category"`
	InstructorID     string       `json:"instructor_id"`
	MaxStudents      int          `json:"max_students"`
	EnrolledStudents int          `json:"enrolled_students"`
	Fee              float64      `json:"fee"`
	Status           CourseStatus `json:"status"`
}

// CourseView is a course joined with its resolved instructor name.
type CourseView struct {
	Course
	InstructorName string `json:"instructor_name"`
}

// CourseUpdate carries merge-patch fields for a course.
type CourseUpdate struct {
	Code             *string       `json:"code"`
	Name             *string       `json:"name"`
	Description      *string       `json:"description"`
	Credits          *int          `json:"credits"`
	Duration         *string       `json:"duration"`
	Level            *CourseLevel  `json:"level"`
	Category         *string       `json:"category"`
	InstructorID     *string       `json:"instructor_id"`
	MaxStudents      *int          `json:"max_students"`
	EnrolledStudents *int          `json:"enrolled_students"`
	Fee              *float64      `json:"fee"`
	Status           *CourseStatus `json:"status"`
}

// CourseFilter captures list filtering options.
type CourseFilter struct {
	Search   string
	Status   CourseStatus
	Level    CourseLevel
	Category string
	Page     int
	PageSize int
}
