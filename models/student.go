package models

// Student represents a student account. Students authenticate with their
// email address and may only view their own grades and attendance.
// A student owns a many-to-many relationship to [Course] through the
// student_courses association table.
type Student struct {
	// StudentID is the internal unique identifier of the student.
	StudentID int64 `json:"id"`

	// Name is the student's display name.
	Name string `json:"name"`

	// Age is the student's age in years.
	Age int `json:"age"`

	// Email is the unique login identifier of the student and is carried
	// as the "sub" claim of student tokens.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the student password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`
}

// StudentUpdate carries the full replacement state for a student record.
// Every field is applied on update; there is no partial-update form, so
// no field of the stored record can change without being listed here.
type StudentUpdate struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the Student model.
func (s Student) TableName() string {
	return "students"
}
