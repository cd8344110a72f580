package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/jackc/pgerrcode"
)

// attendanceRepository is the PostgreSQL-backed implementation of
// [AttendanceRepository] over the "attendance" table.
type attendanceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAttendanceRepository constructs an [AttendanceRepository] backed by
// the provided database connection and logger.
func NewAttendanceRepository(db *DB, logger *logger.Logger) AttendanceRepository {
	logger.Debug().Msg("creating attendance repository")
	return &attendanceRepository{
		db:     db,
		logger: logger,
	}
}

// MarkAttendance inserts an attendance mark unconditionally, one row per
// marking event. The status-to-boolean translation happens in the
// service layer; the repository stores the Present flag as given.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrUnknownStudentOrCourse].
func (r *attendanceRepository) MarkAttendance(ctx context.Context, attendance models.Attendance) (models.Attendance, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, markAttendance, attendance.StudentID, attendance.CourseID, attendance.Date, attendance.Present)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*attendanceRepository.MarkAttendance").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Attendance{}, ErrUnknownStudentOrCourse
		default:
			return models.Attendance{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&attendance.AttendanceID, &attendance.StudentID, &attendance.CourseID, &attendance.Date, &attendance.Present); err != nil {
		log.Err(err).Str("func", "*attendanceRepository.MarkAttendance").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Attendance{}, ErrUnknownStudentOrCourse
		}
		return models.Attendance{}, err
	}

	return attendance, nil
}

// ListAttendanceForStudent returns all attendance rows for the given
// student id in store order. An unknown student id yields an empty
// slice.
func (r *attendanceRepository) ListAttendanceForStudent(ctx context.Context, studentID int64) ([]models.Attendance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAttendanceForStudentQuery(ctx, studentID)
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.ListAttendanceForStudent").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.ListAttendanceForStudent").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	marks := make([]models.Attendance, 0)
	for rows.Next() {
		var mark models.Attendance
		if err := rows.Scan(&mark.AttendanceID, &mark.StudentID, &mark.CourseID, &mark.Date, &mark.Present); err != nil {
			log.Err(err).Str("func", "*attendanceRepository.ListAttendanceForStudent").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		marks = append(marks, mark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return marks, nil
}
