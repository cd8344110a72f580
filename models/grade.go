package models

// Grade represents a single grading event for a student in a course.
// Repeated grades for the same student/course pair are allowed and are
// stored as separate rows.
type Grade struct {
	// GradeID is the internal unique identifier of the grading event.
	GradeID int64 `json:"id"`

	// StudentID references the graded student.
	StudentID int64 `json:"student_id"`

	// CourseID references the course the grade was given in.
	CourseID int64 `json:"course_id"`

	// Grade is the grade value as entered by the admin (e.g. "A", "87").
	Grade string `json:"grade"`
}

// TableName returns the name of the database table
// associated with the Grade model.
func (g Grade) TableName() string {
	return "grades"
}
