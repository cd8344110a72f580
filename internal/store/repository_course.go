package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/jackc/pgerrcode"
)

// courseRepository is the PostgreSQL-backed implementation of
// [CourseRepository] over the "courses" table.
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by the
// provided database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCourse persists a new course and returns it with the
// server-assigned CourseID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrCourseAlreadyExists].
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCourse, course.Name, course.Description)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Course{}, ErrCourseAlreadyExists
		default:
			return models.Course{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&course.CourseID, &course.Name, &course.Description); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Course{}, ErrCourseAlreadyExists
		}
		return models.Course{}, err
	}

	return course, nil
}

// ListCourses returns all courses ordered by id.
func (r *courseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCourses)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.CourseID, &course.Name, &course.Description); err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}
