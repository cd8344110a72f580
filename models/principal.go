package models

// Principal is the authenticated identity resolved from a bearer token:
// an admin or a student that both passed token verification and still
// exists in the store at request time.
type Principal struct {
	// ID is the internal identifier of the underlying account
	// (AdminID for admins, StudentID for students).
	ID int64 `json:"id"`

	// Subject is the unique identity the token was issued for:
	// the username for admins, the email address for students.
	Subject string `json:"subject"`

	// Role is the role the principal was authenticated with.
	Role Role `json:"role"`
}
