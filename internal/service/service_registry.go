package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/internal/store"
	"github.com/MKhiriev/go-student-desk/internal/utils"
	"github.com/MKhiriev/go-student-desk/models"
)

// registryService is the concrete implementation of RegistryService.
// It validates inputs, hashes student passwords before they reach the
// store, and delegates persistence to the repositories.
type registryService struct {
	studentRepository    store.StudentRepository
	courseRepository     store.CourseRepository
	enrollmentRepository store.EnrollmentRepository

	logger *logger.Logger
}

// NewRegistryService constructs a RegistryService wired to the given
// repositories.
func NewRegistryService(students store.StudentRepository, courses store.CourseRepository, enrollments store.EnrollmentRepository, logger *logger.Logger) RegistryService {
	return &registryService{
		studentRepository:    students,
		courseRepository:     courses,
		enrollmentRepository: enrollments,
		logger:               logger,
	}
}

// CreateStudent hashes the password and persists a new student account.
//
// Email uniqueness is not pre-checked; a duplicate surfaces from the
// store as store.ErrEmailAlreadyExists.
func (s *registryService) CreateStudent(ctx context.Context, student models.StudentCreate) (models.Student, error) {
	log := logger.FromContext(ctx)

	if student.Name == "" || student.Email == "" || student.Password == "" {
		log.Error().Str("email", student.Email).Msg("invalid student data provided")
		return models.Student{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(student.Password)
	if err != nil {
		log.Err(err).Msg("student password hashing failed")
		return models.Student{}, fmt.Errorf("student password hashing failed: %w", err)
	}

	createdStudent, err := s.studentRepository.CreateStudent(ctx, models.Student{
		Name:         student.Name,
		Age:          student.Age,
		Email:        student.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", student.Email).Msg("student creation ended with error")
		return models.Student{}, fmt.Errorf("student creation ended with error: %w", err)
	}

	return createdStudent, nil
}

// GetStudent retrieves a single student by id.
func (s *registryService) GetStudent(ctx context.Context, studentID int64) (models.Student, error) {
	student, err := s.studentRepository.GetStudent(ctx, studentID)
	if err != nil {
		return models.Student{}, fmt.Errorf("student lookup failed: %w", err)
	}

	return student, nil
}

// ListStudents returns all student records.
func (s *registryService) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepository.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("student listing failed: %w", err)
	}

	return students, nil
}

// UpdateStudent performs a full replace of the student record. Every
// field of the update struct is applied; the password is re-hashed
// before storage.
func (s *registryService) UpdateStudent(ctx context.Context, studentID int64, update models.StudentUpdate) (models.Student, error) {
	log := logger.FromContext(ctx)

	if update.Name == "" || update.Email == "" || update.Password == "" {
		log.Error().Int64("id", studentID).Msg("invalid student update provided")
		return models.Student{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(update.Password)
	if err != nil {
		log.Err(err).Msg("student password hashing failed")
		return models.Student{}, fmt.Errorf("student password hashing failed: %w", err)
	}

	updatedStudent, err := s.studentRepository.UpdateStudent(ctx, studentID, models.Student{
		Name:         update.Name,
		Age:          update.Age,
		Email:        update.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Int64("id", studentID).Msg("student update ended with error")
		return models.Student{}, fmt.Errorf("student update ended with error: %w", err)
	}

	return updatedStudent, nil
}

// DeleteStudent removes the student and, through the schema cascade, all
// dependent grade, attendance and enrollment rows.
func (s *registryService) DeleteStudent(ctx context.Context, studentID int64) error {
	log := logger.FromContext(ctx)

	if err := s.studentRepository.DeleteStudent(ctx, studentID); err != nil {
		log.Err(err).Int64("id", studentID).Msg("student deletion ended with error")
		return fmt.Errorf("student deletion ended with error: %w", err)
	}

	return nil
}

// CreateCourse persists a new course.
func (s *registryService) CreateCourse(ctx context.Context, course models.CourseCreate) (models.Course, error) {
	log := logger.FromContext(ctx)

	if course.Name == "" {
		log.Error().Msg("invalid course data provided")
		return models.Course{}, ErrInvalidDataProvided
	}

	createdCourse, err := s.courseRepository.CreateCourse(ctx, models.Course{
		Name:        course.Name,
		Description: course.Description,
	})
	if err != nil {
		log.Err(err).Str("name", course.Name).Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	return createdCourse, nil
}

// ListCourses returns all courses.
func (s *registryService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepository.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("course listing failed: %w", err)
	}

	return courses, nil
}

// Enroll links a student to a course. Missing ids surface as the store's
// not-found sentinels; enrolling twice leaves a single association row.
func (s *registryService) Enroll(ctx context.Context, studentID, courseID int64) error {
	log := logger.FromContext(ctx)

	if err := s.enrollmentRepository.Enroll(ctx, studentID, courseID); err != nil {
		log.Err(err).Int64("student_id", studentID).Int64("course_id", courseID).Msg("enrollment ended with error")
		return fmt.Errorf("enrollment ended with error: %w", err)
	}

	return nil
}

// ListCoursesForStudent returns the courses the student is enrolled in.
func (s *registryService) ListCoursesForStudent(ctx context.Context, studentID int64) ([]models.Course, error) {
	courses, err := s.enrollmentRepository.ListCoursesForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("course listing for student failed: %w", err)
	}

	return courses, nil
}
