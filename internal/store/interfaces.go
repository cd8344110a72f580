package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-student-desk/models"
)

// AdminRepository persists administrator accounts.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (models.Admin, error)
}

// StudentRepository persists student accounts.
//
// UpdateStudent performs a full replace of all mutable fields and
// returns [ErrNoStudentWasFound] when the id is absent. DeleteStudent
// removes the student together with all dependent grade, attendance and
// enrollment rows (the schema cascades the delete).
type StudentRepository interface {
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)
	GetStudent(ctx context.Context, studentID int64) (models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	UpdateStudent(ctx context.Context, studentID int64, student models.Student) (models.Student, error)
	DeleteStudent(ctx context.Context, studentID int64) error
	FindStudentByEmail(ctx context.Context, email string) (models.Student, error)
}

// CourseRepository persists courses. Courses have no update or delete
// operations.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}

// EnrollmentRepository manages the many-to-many association between
// students and courses.
//
// Enroll verifies that both the student and the course exist inside one
// transaction and then inserts the association row; re-enrolling an
// already enrolled pair is a no-op, so the edge is never duplicated.
// ListCoursesForStudent returns an empty slice both for a student with
// no enrollments and for an unknown student id.
type EnrollmentRepository interface {
	Enroll(ctx context.Context, studentID, courseID int64) error
	ListCoursesForStudent(ctx context.Context, studentID int64) ([]models.Course, error)
}

// GradeRepository persists grading events. AssignGrade inserts
// unconditionally and relies on the database foreign keys to reject
// unknown student or course ids.
type GradeRepository interface {
	AssignGrade(ctx context.Context, grade models.Grade) (models.Grade, error)
	ListGradesForStudent(ctx context.Context, studentID int64) ([]models.Grade, error)
}

// AttendanceRepository persists attendance marks, one row per marking
// event, mirroring the GradeRepository contract.
type AttendanceRepository interface {
	MarkAttendance(ctx context.Context, attendance models.Attendance) (models.Attendance, error)
	ListAttendanceForStudent(ctx context.Context, studentID int64) ([]models.Attendance, error)
}
