// Package seed bundles the example records the store starts from when no
// persisted snapshot exists. Ids are stable so that fixtures and smoke
// flows can reference them.
package seed

import (
	"time"

	"github.com/edudesk/tms-api/internal/models"
)

// Teachers returns the bundled teacher collection.
func Teachers() []models.Teacher {
	return []models.Teacher{
		{
			ID:    "1",
			Name:  "Dr. Sarah Johnson",
			Email: "sarah.johnson@school.edu",
			Phone: "+1 (555) 123-4567",
			Address: models.Address{
				Street: "123 Oak Street", City: "Springfield", State: "IL", ZipCode: "62701",
			},
			Status:        models.TeacherStatusActive,
			Subjects:      []string{"Mathematics", "Calculus", "Algebra"},
			Experience:    12,
			Rating:        4.8,
			TotalStudents: 85,
			Qualifications: []models.Qualification{
				{ID: "1", Name: "Mathematics Proficiency", Type: models.SessionTypePrivate, Rate: 45, Currency: "USD", Description: "Advanced mathematics tutoring for high school and college students"},
				{ID: "2", Name: "Calculus Intensive", Type: models.SessionTypePrivate, Rate: 50, Currency: "USD"},
				{ID: "3", Name: "Algebra Group", Type: models.SessionTypeGroup, Rate: 25, Currency: "USD", Description: "Group sessions for algebra fundamentals"},
			},
			Schedule: []models.ScheduleSlot{
				{ID: "1", Day: "Monday", StartTime: "09:00", EndTime: "12:00", Available: true, Type: models.SessionTypePrivate, Subject: "Calculus"},
				{ID: "2", Day: "Wednesday", StartTime: "10:00", EndTime: "14:00", Available: true, Type: models.SessionTypeGroup, Subject: "Algebra"},
				{ID: "3", Day: "Friday", StartTime: "14:00", EndTime: "16:00", Available: false, Type: models.SessionTypePrivate, Subject: "Mathematics"},
			},
		},
		{
			ID:    "2",
			Name:  "Prof. Michael Chen",
			Email: "michael.chen@school.edu",
			Phone: "+1 (555) 234-5678",
			Address: models.Address{
				Street: "456 Pine Avenue", City: "Springfield", State: "IL", ZipCode: "62702",
			},
			Status:        models.TeacherStatusActive,
			Subjects:      []string{"Physics", "Quantum Mechanics", "Thermodynamics"},
			Experience:    15,
			Rating:        4.9,
			TotalStudents: 92,
			Qualifications: []models.Qualification{
				{ID: "1", Name: "Physics Core", Type: models.SessionTypePrivate, Rate: 55, Currency: "USD", Description: "Mechanics, thermodynamics and electromagnetism"},
				{ID: "2", Name: "Physics Lab Group", Type: models.SessionTypeGroup, Rate: 32, Currency: "USD"},
			},
			Schedule: []models.ScheduleSlot{
				{ID: "1", Day: "Tuesday", StartTime: "08:00", EndTime: "12:00", Available: true, Type: models.SessionTypePrivate, Subject: "Physics"},
				{ID: "2", Day: "Thursday", StartTime: "13:00", EndTime: "16:00", Available: true, Type: models.SessionTypeGroup, Subject: "Thermodynamics"},
			},
		},
		{
			ID:    "3",
			Name:  "Ms. Emily Rodriguez",
			Email: "emily.rodriguez@school.edu",
			Phone: "+1 (555) 345-6789",
			Address: models.Address{
				Street: "789 Maple Drive", City: "Springfield", State: "IL", ZipCode: "62703",
			},
			Status:        models.TeacherStatusActive,
			Subjects:      []string{"English", "Literature", "Creative Writing"},
			Experience:    8,
			Rating:        4.6,
			TotalStudents: 78,
			Qualifications: []models.Qualification{
				{ID: "1", Name: "English Literature Advanced", Type: models.SessionTypePrivate, Rate: 48, Currency: "USD"},
				{ID: "2", Name: "Creative Writing Workshop", Type: models.SessionTypeGroup, Rate: 30, Currency: "USD", Description: "Interactive sessions for aspiring writers"},
			},
			Schedule: []models.ScheduleSlot{
				{ID: "1", Day: "Monday", StartTime: "08:30", EndTime: "12:30", Available: true, Type: models.SessionTypePrivate, Subject: "English Literature"},
				{ID: "2", Day: "Thursday", StartTime: "09:00", EndTime: "14:00", Available: true, Type: models.SessionTypeGroup, Subject: "Creative Writing"},
			},
		},
		{
			ID:    "4",
			Name:  "Dr. James Wilson",
			Email: "james.wilson@school.edu",
			Phone: "+1 (555) 456-7890",
			Address: models.Address{
				Street: "321 Cedar Lane", City: "Springfield", State: "IL", ZipCode: "62704",
			},
			Status:        models.TeacherStatusActive,
			Subjects:      []string{"Chemistry", "Organic Chemistry", "Biochemistry"},
			Experience:    14,
			Rating:        4.7,
			TotalStudents: 89,
			Qualifications: []models.Qualification{
				{ID: "1", Name: "Chemistry Fundamentals", Type: models.SessionTypePrivate, Rate: 46, Currency: "USD"},
				{ID: "2", Name: "Organic Chemistry Lab Group", Type: models.SessionTypeGroup, Rate: 28, Currency: "USD"},
			},
			Schedule: []models.ScheduleSlot{
				{ID: "1", Day: "Wednesday", StartTime: "08:00", EndTime: "12:00", Available: true, Type: models.SessionTypePrivate, Subject: "Chemistry"},
				{ID: "2", Day: "Friday", StartTime: "10:00", EndTime: "15:00", Available: true, Type: models.SessionTypeGroup, Subject: "Organic Chemistry"},
			},
		},
		{
			ID:    "5",
			Name:  "Ms. Anna Thompson",
			Email: "anna.thompson@school.edu",
			Phone: "+1 (555) 567-8901",
			Address: models.Address{
				Street: "654 Birch Street", City: "Springfield", State: "IL", ZipCode: "62705",
			},
			Status:        models.TeacherStatusActive,
			Subjects:      []string{"Biology", "Molecular Biology", "Genetics"},
			Experience:    10,
			Rating:        4.5,
			TotalStudents: 73,
			Qualifications: []models.Qualification{
				{ID: "1", Name: "Biology Essentials", Type: models.SessionTypePrivate, Rate: 42, Currency: "USD"},
			},
			Schedule: []models.ScheduleSlot{
				{ID: "1", Day: "Tuesday", StartTime: "09:00", EndTime: "13:00", Available: true, Type: models.SessionTypePrivate, Subject: "Biology"},
				{ID: "2", Day: "Thursday", StartTime: "08:30", EndTime: "12:30", Available: false, Type: models.SessionTypePrivate, Subject: "Molecular Biology"},
			},
		},
		{
			ID:    "6",
			Name:  "Mr. David Kim",
			Email: "david.kim@school.edu",
			Phone: "+1 (555) 678-9012",
			Address: models.Address{
				Street: "987 Elm Avenue", City: "Springfield", State: "IL", ZipCode: "62706",
			},
			Status:        models.TeacherStatusActive,
			Subjects:      []string{"Computer Science", "Programming", "Data Structures", "Algorithms"},
			Experience:    13,
			Rating:        4.8,
			TotalStudents: 95,
			Qualifications: []models.Qualification{
				{ID: "1", Name: "Python Programming", Type: models.SessionTypePrivate, Rate: 60, Currency: "USD", Description: "Complete Python programming from basics to advanced concepts"},
				{ID: "2", Name: "Web Development Bootcamp", Type: models.SessionTypeGroup, Rate: 40, Currency: "USD"},
				{ID: "3", Name: "Interview Preparation", Type: models.SessionTypePrivate, Rate: 65, Currency: "USD", Description: "Data structures and algorithms for technical interviews"},
			},
			Schedule: []models.ScheduleSlot{
				{ID: "1", Day: "Monday", StartTime: "10:00", EndTime: "14:00", Available: true, Type: models.SessionTypePrivate, Subject: "Programming"},
				{ID: "2", Day: "Friday", StartTime: "09:00", EndTime: "15:00", Available: true, Type: models.SessionTypeGroup, Subject: "Data Structures"},
			},
		},
		{
			ID:    "7",
			Name:  "Dr. Lisa Martinez",
			Email: "lisa.martinez@school.edu",
			Phone: "+1 (555) 789-0123",
			Address: models.Address{
				Street: "147 Willow Road", City: "Springfield", State: "IL", ZipCode: "62707",
			},
			Status:        models.TeacherStatusActive,
			Subjects:      []string{"History", "American History", "World History"},
			Experience:    16,
			Rating:        4.7,
			TotalStudents: 82,
			Qualifications: []models.Qualification{
				{ID: "1", Name: "History Fundamentals", Type: models.SessionTypePrivate, Rate: 44, Currency: "USD"},
				{ID: "2", Name: "History Seminar Group", Type: models.SessionTypeGroup, Rate: 26, Currency: "USD"},
			},
			Schedule: []models.ScheduleSlot{
				{ID: "1", Day: "Monday", StartTime: "11:00", EndTime: "15:00", Available: true, Type: models.SessionTypePrivate, Subject: "American History"},
				{ID: "2", Day: "Wednesday", StartTime: "09:00", EndTime: "13:00", Available: true, Type: models.SessionTypeGroup, Subject: "World History"},
			},
		},
		{
			ID:    "8",
			Name:  "Mr. Robert Taylor",
			Email: "robert.taylor@school.edu",
			Phone: "+1 (555) 890-1234",
			Address: models.Address{
				Street: "258 Spruce Lane", City: "Springfield", State: "IL", ZipCode: "62708",
			},
			Status:        models.TeacherStatusPending,
			Subjects:      []string{"Art", "Fine Arts", "Digital Art", "Sculpture"},
			Experience:    9,
			Rating:        4.4,
			TotalStudents: 65,
			Qualifications: []models.Qualification{
				{ID: "1", Name: "Digital Art Studio", Type: models.SessionTypeGroup, Rate: 24, Currency: "USD"},
			},
			Schedule: []models.ScheduleSlot{
				{ID: "1", Day: "Tuesday", StartTime: "10:00", EndTime: "14:00", Available: true, Type: models.SessionTypeGroup, Subject: "Fine Arts"},
				{ID: "2", Day: "Thursday", StartTime: "11:00", EndTime: "16:00", Available: true, Type: models.SessionTypeGroup, Subject: "Digital Art"},
			},
		},
	}
}

// Meetings returns the bundled meeting collection.
func Meetings() []models.Meeting {
	return []models.Meeting{
		{
			ID: "1", TeacherID: "1",
			Title: "Quarterly Performance Review", Type: models.MeetingTypePerformance,
			Date: "2024-02-15", StartTime: "14:00", EndTime: "15:00",
			Location:  "Conference Room A",
			Attendees: []string{"HR Manager", "Dr. Sarah Johnson"},
			Agenda:    "Review of teaching performance and student feedback for Q1",
			Status:    models.MeetingStatusScheduled, Priority: models.MeetingPriorityHigh,
			CreatedBy: "HR Manager", CreatedAt: mustTime("2024-01-20T10:00:00Z"),
		},
		{
			ID: "2", TeacherID: "2",
			Title: "Department Budget Discussion", Type: models.MeetingTypeSenior,
			Date: "2024-02-20", StartTime: "10:00", EndTime: "11:30",
			Location:  "Principal Office",
			Attendees: []string{"Principal", "Prof. Michael Chen"},
			Agenda:    "Planning budget allocation for Physics department equipment",
			Status:    models.MeetingStatusCompleted, Priority: models.MeetingPriorityMedium,
			CreatedBy: "Principal", CreatedAt: mustTime("2024-01-25T09:00:00Z"),
		},
		{
			ID: "3", TeacherID: "3",
			Title: "New Teacher Orientation Follow-up", Type: models.MeetingTypeHR,
			Date: "2024-02-25", StartTime: "15:30", EndTime: "16:15",
			Location:  "HR Office",
			Attendees: []string{"HR Manager", "Ms. Emily Rodriguez"},
			Agenda:    "Check-in meeting for new teacher integration",
			Status:    models.MeetingStatusScheduled, Priority: models.MeetingPriorityMedium,
			CreatedBy: "HR Manager", CreatedAt: mustTime("2024-02-01T11:00:00Z"),
		},
		{
			ID: "4", TeacherID: "4",
			Title: "Lab Safety Protocol Review", Type: models.MeetingTypeTraining,
			Date: "2024-03-01", StartTime: "09:00", EndTime: "11:00",
			Location:  "Chemistry Lab",
			Attendees: []string{"Safety Officer", "Dr. James Wilson"},
			Agenda:    "Annual review of chemistry lab safety procedures",
			Status:    models.MeetingStatusScheduled, Priority: models.MeetingPriorityHigh,
			CreatedBy: "Safety Officer", CreatedAt: mustTime("2024-02-10T08:00:00Z"),
		},
		{
			ID: "5", TeacherID: "5",
			Title: "Curriculum Development Meeting", Type: models.MeetingTypeSenior,
			Date: "2024-03-05", StartTime: "13:00", EndTime: "14:15",
			Location:  "Conference Room B",
			Attendees: []string{"Curriculum Coordinator", "Ms. Anna Thompson"},
			Agenda:    "Discussion on new biology curriculum standards",
			Status:    models.MeetingStatusScheduled, Priority: models.MeetingPriorityMedium,
			CreatedBy: "Curriculum Coordinator", CreatedAt: mustTime("2024-02-15T14:00:00Z"),
		},
		{
			ID: "6", TeacherID: "6",
			Title: "Technology Integration Workshop", Type: models.MeetingTypeTraining,
			Date: "2024-03-10", StartTime: "16:00", EndTime: "17:00",
			Location:  "Computer Lab",
			Attendees: []string{"IT Director", "Mr. David Kim"},
			Agenda:    "Planning workshop for integrating new programming tools",
			Status:    models.MeetingStatusScheduled, Priority: models.MeetingPriorityLow,
			CreatedBy: "IT Director", CreatedAt: mustTime("2024-02-20T12:00:00Z"),
		},
	}
}

// Leaves returns the bundled leave collection.
func Leaves() []models.Leave {
	approvedAt1 := mustTime("2024-02-11T09:30:00Z")
	rejectedAt5 := mustTime("2024-02-04T16:00:00Z")
	approvedAt8 := mustTime("2024-02-21T10:30:00Z")
	return []models.Leave{
		{
			ID: "1", TeacherID: "1", Type: models.LeaveTypeSick,
			StartDate: "2024-02-12", EndDate: "2024-02-14", Days: 3,
			Reason: "Flu symptoms and recovery", Status: models.LeaveStatusApproved,
			AppliedDate: "2024-02-10", ApprovedBy: "HR Manager", ApprovedAt: &approvedAt1,
		},
		{
			ID: "2", TeacherID: "2", Type: models.LeaveTypeVacation,
			StartDate: "2024-03-15", EndDate: "2024-03-22", Days: 8,
			Reason: "Family vacation to Europe", Status: models.LeaveStatusPending,
			AppliedDate: "2024-02-01",
		},
		{
			ID: "3", TeacherID: "3", Type: models.LeaveTypePersonal,
			StartDate: "2024-02-28", EndDate: "2024-03-01", Days: 3,
			Reason: "Personal family matter", Status: models.LeaveStatusPending,
			AppliedDate: "2024-02-20",
		},
		{
			ID: "4", TeacherID: "4", Type: models.LeaveTypeTraining,
			StartDate: "2024-04-10", EndDate: "2024-04-12", Days: 3,
			Reason: "International Chemistry Conference", Status: models.LeaveStatusPending,
			AppliedDate: "2024-01-15",
		},
		{
			ID: "5", TeacherID: "5", Type: models.LeaveTypeSick,
			StartDate: "2024-02-05", EndDate: "2024-02-05", Days: 1,
			Reason: "Medical appointment", Status: models.LeaveStatusRejected,
			AppliedDate: "2024-02-03", ApprovedBy: "HR Manager", ApprovedAt: &rejectedAt5,
		},
		{
			ID: "6", TeacherID: "6", Type: models.LeaveTypeEmergency,
			StartDate: "2024-02-25", EndDate: "2024-02-26", Days: 2,
			Reason: "Family emergency", Status: models.LeaveStatusPending,
			AppliedDate: "2024-02-24",
		},
		{
			ID: "7", TeacherID: "7", Type: models.LeaveTypeMaternity,
			StartDate: "2024-05-01", EndDate: "2024-08-01", Days: 93,
			Reason: "Maternity leave for newborn", Status: models.LeaveStatusPending,
			AppliedDate: "2024-02-15",
		},
		{
			ID: "8", TeacherID: "8", Type: models.LeaveTypeVacation,
			StartDate: "2024-03-10", EndDate: "2024-03-12", Days: 3,
			Reason: "Weekend getaway", Status: models.LeaveStatusApproved,
			AppliedDate: "2024-02-20", ApprovedBy: "Principal", ApprovedAt: &approvedAt8,
		},
	}
}

// Courses returns the bundled course collection.
func Courses() []models.Course {
	return []models.Course{
		{
			ID: "1", Code: "MATH-401", Name: "Advanced Calculus",
			Description: "Advanced mathematical concepts including differential and integral calculus",
			Credits:     4, Duration: "16 weeks", Level: models.CourseLevelAdvanced,
			Category: "Mathematics", InstructorID: "1",
			MaxStudents: 30, EnrolledStudents: 28, Fee: 480, Status: models.CourseStatusActive,
		},
		{
			ID: "2", Code: "PHYS-501", Name: "Quantum Physics",
			Description: "Introduction to quantum mechanics and modern physics principles",
			Credits:     4, Duration: "16 weeks", Level: models.CourseLevelAdvanced,
			Category: "Physics", InstructorID: "2",
			MaxStudents: 25, EnrolledStudents: 23, Fee: 520, Status: models.CourseStatusActive,
		},
		{
			ID: "3", Code: "ENG-301", Name: "Creative Writing Workshop",
			Description: "Hands-on workshop for developing creative writing skills",
			Credits:     3, Duration: "12 weeks", Level: models.CourseLevelIntermediate,
			Category: "English", InstructorID: "3",
			MaxStudents: 20, EnrolledStudents: 18, Fee: 350, Status: models.CourseStatusActive,
		},
		{
			ID: "4", Code: "CHEM-401L", Name: "Organic Chemistry Lab",
			Description: "Laboratory component for organic chemistry with hands-on experiments",
			Credits:     2, Duration: "16 weeks", Level: models.CourseLevelAdvanced,
			Category: "Chemistry", InstructorID: "4",
			MaxStudents: 16, EnrolledStudents: 15, Fee: 410, Status: models.CourseStatusActive,
		},
		{
			ID: "5", Code: "BIO-401", Name: "Molecular Biology",
			Description: "Study of biological processes at the molecular level",
			Credits:     4, Duration: "16 weeks", Level: models.CourseLevelAdvanced,
			Category: "Biology", InstructorID: "5",
			MaxStudents: 24, EnrolledStudents: 22, Fee: 460, Status: models.CourseStatusActive,
		},
		{
			ID: "6", Code: "CS-301", Name: "Data Structures & Algorithms",
			Description: "Fundamental data structures and algorithmic problem solving",
			Credits:     4, Duration: "16 weeks", Level: models.CourseLevelIntermediate,
			Category: "Computer Science", InstructorID: "6",
			MaxStudents: 35, EnrolledStudents: 32, Fee: 500, Status: models.CourseStatusActive,
		},
		{
			ID: "7", Code: "HIST-201", Name: "American History Survey",
			Description: "Comprehensive survey of American history from colonial times to present",
			Credits:     3, Duration: "16 weeks", Level: models.CourseLevelIntermediate,
			Category: "History", InstructorID: "7",
			MaxStudents: 40, EnrolledStudents: 35, Fee: 320, Status: models.CourseStatusActive,
		},
		{
			ID: "8", Code: "ART-301", Name: "Digital Art & Design",
			Description: "Introduction to digital art creation using modern software tools",
			Credits:     3, Duration: "12 weeks", Level: models.CourseLevelIntermediate,
			Category: "Art", InstructorID: "8",
			MaxStudents: 18, EnrolledStudents: 16, Fee: 380, Status: models.CourseStatusActive,
		},
	}
}

// Students returns the bundled student collection.
func Students() []models.Student {
	return []models.Student{
		{
			ID: "1", Name: "Alex Martin", Email: "alex.martin@student.edu", Phone: "+1 (555) 111-2233",
			Grade: "11th Grade", Subjects: []string{"Mathematics", "Physics"},
			EnrollmentDate: "2023-08-21", Status: models.StudentStatusActive, GPA: 3.7,
			Address:       models.Address{Street: "12 River Road", City: "Springfield", State: "IL", ZipCode: "62701"},
			ParentContact: models.ContactPerson{Name: "Paula Martin", Phone: "+1 (555) 111-2234", Email: "paula.martin@example.com"},
		},
		{
			ID: "2", Name: "Brianna Lee", Email: "brianna.lee@student.edu", Phone: "+1 (555) 222-3344",
			Grade: "12th Grade", Subjects: []string{"English", "History"},
			EnrollmentDate: "2022-08-22", Status: models.StudentStatusActive, GPA: 3.9,
			Address:       models.Address{Street: "89 Lakeview Drive", City: "Springfield", State: "IL", ZipCode: "62702"},
			ParentContact: models.ContactPerson{Name: "Grace Lee", Phone: "+1 (555) 222-3345", Email: "grace.lee@example.com"},
		},
		{
			ID: "3", Name: "Carlos Nguyen", Email: "carlos.nguyen@student.edu", Phone: "+1 (555) 333-4455",
			Grade: "10th Grade", Subjects: []string{"Computer Science", "Mathematics"},
			EnrollmentDate: "2024-01-08", Status: models.StudentStatusActive, GPA: 3.4,
			Address:       models.Address{Street: "45 Sunset Avenue", City: "Springfield", State: "IL", ZipCode: "62703"},
			ParentContact: models.ContactPerson{Name: "Linh Nguyen", Phone: "+1 (555) 333-4456", Email: "linh.nguyen@example.com"},
		},
		{
			ID: "4", Name: "Dana Price", Email: "dana.price@student.edu", Phone: "+1 (555) 444-5566",
			Grade: "12th Grade", Subjects: []string{"Biology", "Chemistry"},
			EnrollmentDate: "2021-08-23", Status: models.StudentStatusGraduated, GPA: 3.8,
			Address:       models.Address{Street: "301 Hilltop Court", City: "Springfield", State: "IL", ZipCode: "62704"},
			ParentContact: models.ContactPerson{Name: "Morgan Price", Phone: "+1 (555) 444-5567", Email: "morgan.price@example.com"},
		},
		{
			ID: "5", Name: "Evan Osei", Email: "evan.osei@student.edu", Phone: "+1 (555) 555-6677",
			Grade: "11th Grade", Subjects: []string{"Art", "English"},
			EnrollmentDate: "2023-08-21", Status: models.StudentStatusInactive, GPA: 3.1,
			Address:       models.Address{Street: "77 Meadow Lane", City: "Springfield", State: "IL", ZipCode: "62705"},
			ParentContact: models.ContactPerson{Name: "Abena Osei", Phone: "+1 (555) 555-6678", Email: "abena.osei@example.com"},
		},
	}
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
