package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/models"
)

// enrollmentRepository is the PostgreSQL-backed implementation of
// [EnrollmentRepository] over the "student_courses" association table.
type enrollmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEnrollmentRepository constructs an [EnrollmentRepository] backed by
// the provided database connection and logger.
func NewEnrollmentRepository(db *DB, logger *logger.Logger) EnrollmentRepository {
	logger.Debug().Msg("creating enrollment repository")
	return &enrollmentRepository{
		db:     db,
		logger: logger,
	}
}

// Enroll links a student to a course.
//
// The existence checks and the insert run inside one transaction so the
// association can never be written for a student or course deleted
// between the check and the insert. The insert uses ON CONFLICT DO
// NOTHING, so enrolling an already enrolled pair leaves exactly one
// association row.
//
// Error handling:
//   - unknown student id → [ErrNoStudentWasFound]
//   - unknown course id → [ErrNoCourseWasFound]
func (r *enrollmentRepository) Enroll(ctx context.Context, studentID, courseID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx, studentExists, studentID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error checking student existence")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !exists {
		return ErrNoStudentWasFound
	}

	if err := tx.QueryRowContext(ctx, courseExists, courseID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error checking course existence")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !exists {
		return ErrNoCourseWasFound
	}

	if _, err := tx.ExecContext(ctx, enrollStudent, studentID, courseID); err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error inserting enrollment")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.Enroll").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ListCoursesForStudent returns the courses the given student is
// enrolled in, ordered by course id. An unknown student id yields an
// empty slice, indistinguishable from a student with no enrollments.
func (r *enrollmentRepository) ListCoursesForStudent(ctx context.Context, studentID int64) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCoursesForStudentQuery(ctx, studentID)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.ListCoursesForStudent").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentRepository.ListCoursesForStudent").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.CourseID, &course.Name, &course.Description); err != nil {
			log.Err(err).Str("func", "*enrollmentRepository.ListCoursesForStudent").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}
