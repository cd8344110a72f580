package models

// Admin represents an administrative account. Admins manage students,
// courses, enrollments, grades and attendance. The record is immutable
// after creation except for the password hash.
type Admin struct {
	// AdminID is the internal unique identifier of the admin account.
	AdminID int64 `json:"id"`

	// Username is the unique login identifier used during authentication
	// and carried as the "sub" claim of admin tokens.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the admin password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
