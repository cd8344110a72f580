package models

import "time"

// LoginRequest carries the credentials presented at the admin and
// student login endpoints. For students, Username holds the email
// address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the body returned by the login endpoints.
type TokenResponse struct {
	// AccessToken is the compact signed JWT to be sent back in the
	// Authorization header as "Bearer <token>".
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// AdminCreate carries the input of the admin bootstrap operation.
type AdminCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StudentCreate carries the input for creating a student account.
// The password is hashed before storage and never persisted in plain form.
type StudentCreate struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EnrollRequest carries the student/course pair for the enroll operation.
type EnrollRequest struct {
	StudentID int64 `json:"student_id"`
	CourseID  int64 `json:"course_id"`
}

// CourseCreate carries the input for creating a course.
type CourseCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GradeCreate carries the input for assigning a grade.
type GradeCreate struct {
	StudentID int64  `json:"student_id"`
	CourseID  int64  `json:"course_id"`
	Grade     string `json:"grade"`
}

// AttendanceCreate carries the input for marking attendance. Status is
// the {present, absent} enumeration translated to a boolean flag before
// storage.
type AttendanceCreate struct {
	StudentID int64     `json:"student_id"`
	CourseID  int64     `json:"course_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}
