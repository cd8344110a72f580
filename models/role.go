package models

import "fmt"

// Role is the closed set of principal roles recognised by the access
// control layer. A token whose role claim is not one of these values is
// rejected at the boundary.
type Role string

const (
	// RoleAdmin marks principals allowed to manage students, courses,
	// enrollments, grades and attendance.
	RoleAdmin Role = "admin"

	// RoleStudent marks principals allowed to view only their own
	// grades and attendance.
	RoleStudent Role = "student"
)

// ParseRole converts a raw claim value into a Role. Unknown values are
// rejected so that the guard always works with the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is one of the known enumeration values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// String returns the wire representation of the role.
// It implements the [fmt.Stringer] interface.
func (r Role) String() string {
	return string(r)
}
