package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/jackc/pgerrcode"
)

// gradeRepository is the PostgreSQL-backed implementation of
// [GradeRepository] over the "grades" table.
type gradeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGradeRepository constructs a [GradeRepository] backed by the
// provided database connection and logger.
func NewGradeRepository(db *DB, logger *logger.Logger) GradeRepository {
	logger.Debug().Msg("creating grade repository")
	return &gradeRepository{
		db:     db,
		logger: logger,
	}
}

// AssignGrade inserts a grading event unconditionally. No existence
// check is made on the student or course; the foreign-key constraints
// are the single source of truth.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUnknownStudentOrCourse].
func (r *gradeRepository) AssignGrade(ctx context.Context, grade models.Grade) (models.Grade, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, assignGrade, grade.StudentID, grade.CourseID, grade.Grade)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*gradeRepository.AssignGrade").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Grade{}, ErrUnknownStudentOrCourse
		default:
			return models.Grade{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&grade.GradeID, &grade.StudentID, &grade.CourseID, &grade.Grade); err != nil {
		log.Err(err).Str("func", "*gradeRepository.AssignGrade").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Grade{}, ErrUnknownStudentOrCourse
		}
		return models.Grade{}, err
	}

	return grade, nil
}

// ListGradesForStudent returns all grade rows for the given student id
// in whatever order the store yields them. An unknown student id yields
// an empty slice.
func (r *gradeRepository) ListGradesForStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListGradesForStudentQuery(ctx, studentID)
	if err != nil {
		log.Err(err).Str("func", "*gradeRepository.ListGradesForStudent").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gradeRepository.ListGradesForStudent").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grades := make([]models.Grade, 0)
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(&grade.GradeID, &grade.StudentID, &grade.CourseID, &grade.Grade); err != nil {
			log.Err(err).Str("func", "*gradeRepository.ListGradesForStudent").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		grades = append(grades, grade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grades, nil
}
