package models

import (
	"fmt"
	"time"
)

// AttendanceStatus is the input enumeration for marking attendance.
// It is translated into the boolean Present flag before storage.
type AttendanceStatus string

const (
	// StatusPresent marks the student as present on the given date.
	StatusPresent AttendanceStatus = "present"

	// StatusAbsent marks the student as absent on the given date.
	StatusAbsent AttendanceStatus = "absent"
)

// ParseAttendanceStatus converts a raw request value into an
// AttendanceStatus, rejecting anything outside the enumeration.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch AttendanceStatus(s) {
	case StatusPresent:
		return StatusPresent, nil
	case StatusAbsent:
		return StatusAbsent, nil
	default:
		return "", fmt.Errorf("unknown attendance status %q", s)
	}
}

// Present reports whether the status translates to a present mark.
func (s AttendanceStatus) Present() bool {
	return s == StatusPresent
}

// Attendance represents a single attendance mark for a student in a
// course on a given date. One row is stored per marking event.
type Attendance struct {
	// AttendanceID is the internal unique identifier of the mark.
	AttendanceID int64 `json:"id"`

	// StudentID references the marked student.
	StudentID int64 `json:"student_id"`

	// CourseID references the course the mark belongs to.
	CourseID int64 `json:"course_id"`

	// Date is the calendar date the mark applies to.
	Date time.Time `json:"date"`

	// Present is true when the student attended on Date.
	Present bool `json:"present"`
}

// TableName returns the name of the database table
// associated with the Attendance model.
func (a Attendance) TableName() string {
	return "attendance"
}
