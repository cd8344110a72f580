package service

import (
	"context"

	"github.com/MKhiriev/go-student-desk/models"
)

// AuthService handles credential verification, token lifecycle, and
// principal resolution for the access control guard.
type AuthService interface {
	// RegisterAdmin creates an admin account from the bootstrap
	// operation. It is gated by the allow-admin-signup configuration
	// switch and returns ErrAdminSignupDisabled when the switch is off.
	RegisterAdmin(ctx context.Context, admin models.AdminCreate) (models.Admin, error)

	// LoginAdmin verifies admin credentials by username.
	LoginAdmin(ctx context.Context, username, password string) (models.Admin, error)

	// LoginStudent verifies student credentials by email.
	LoginStudent(ctx context.Context, email, password string) (models.Student, error)

	// CreateToken issues a signed JWT for the given subject and role.
	CreateToken(ctx context.Context, subject string, role models.Role) (models.Token, error)

	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolvePrincipal decodes the token, checks the role claim against
	// requiredRole, and looks up the account behind the subject claim.
	// Any failure along that path is reported as ErrUnauthorized.
	ResolvePrincipal(ctx context.Context, tokenString string, requiredRole models.Role) (models.Principal, error)
}

// RegistryService manages students, courses, and the enrollment
// association between them.
type RegistryService interface {
	CreateStudent(ctx context.Context, student models.StudentCreate) (models.Student, error)
	GetStudent(ctx context.Context, studentID int64) (models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	UpdateStudent(ctx context.Context, studentID int64, update models.StudentUpdate) (models.Student, error)
	DeleteStudent(ctx context.Context, studentID int64) error

	CreateCourse(ctx context.Context, course models.CourseCreate) (models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)

	Enroll(ctx context.Context, studentID, courseID int64) error
	ListCoursesForStudent(ctx context.Context, studentID int64) ([]models.Course, error)
}

// RecordsService manages grading events and attendance marks.
type RecordsService interface {
	AssignGrade(ctx context.Context, grade models.GradeCreate) (models.Grade, error)
	ListGradesForStudent(ctx context.Context, studentID int64) ([]models.Grade, error)

	MarkAttendance(ctx context.Context, attendance models.AttendanceCreate) (models.Attendance, error)
	ListAttendanceForStudent(ctx context.Context, studentID int64) ([]models.Attendance, error)
}
