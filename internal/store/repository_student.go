package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/jackc/pgerrcode"
)

// studentRepository is the PostgreSQL-backed implementation of
// [StudentRepository] over the "students" table.
type studentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStudentRepository constructs a [StudentRepository] backed by the
// provided database connection and logger.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateStudent persists a new student record and returns it with the
// server-assigned StudentID.
//
// Uniqueness of the email address is not pre-checked; the database
// constraint is the single source of truth.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *studentRepository) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createStudent, student.Name, student.Age, student.Email, student.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Student{}, ErrEmailAlreadyExists
		default:
			return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&student.StudentID, &student.Name, &student.Age, &student.Email, &student.PasswordHash); err != nil {
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Student{}, ErrEmailAlreadyExists
		}
		return models.Student{}, err
	}

	return student, nil
}

// GetStudent retrieves a student by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoStudentWasFound].
func (r *studentRepository) GetStudent(ctx context.Context, studentID int64) (models.Student, error) {
	log := logger.FromContext(ctx)

	var student models.Student
	row := r.db.QueryRowContext(ctx, getStudent, studentID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*studentRepository.GetStudent").Msg("error: row is nil")
		return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&student.StudentID, &student.Name, &student.Age, &student.Email, &student.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrNoStudentWasFound
		}

		log.Err(err).Str("func", "*studentRepository.GetStudent").Msg("error: scanning error")
		return models.Student{}, err
	}

	return student, nil
}

// FindStudentByEmail retrieves a student by the unique email address.
// Used by the login flow and by the student guard resolving the token
// subject.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoStudentWasFound].
func (r *studentRepository) FindStudentByEmail(ctx context.Context, email string) (models.Student, error) {
	log := logger.FromContext(ctx)

	var student models.Student
	row := r.db.QueryRowContext(ctx, findStudentByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*studentRepository.FindStudentByEmail").Msg("error: row is nil")
		return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&student.StudentID, &student.Name, &student.Age, &student.Email, &student.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrNoStudentWasFound
		}

		log.Err(err).Str("func", "*studentRepository.FindStudentByEmail").Msg("error: scanning error")
		return models.Student{}, err
	}

	return student, nil
}

// ListStudents returns all student records ordered by id.
func (r *studentRepository) ListStudents(ctx context.Context) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listStudents)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.StudentID, &student.Name, &student.Age, &student.Email, &student.PasswordHash); err != nil {
			log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return students, nil
}

// UpdateStudent performs a full replace of all mutable student fields.
// Every column is written explicitly; there is no dynamic field copying,
// so nothing outside the listed columns can ever be set.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoStudentWasFound] (the id is absent).
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
func (r *studentRepository) UpdateStudent(ctx context.Context, studentID int64, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	var updated models.Student
	row := r.db.QueryRowContext(ctx, updateStudent, student.Name, student.Age, student.Email, student.PasswordHash, studentID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Student{}, ErrEmailAlreadyExists
		default:
			return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&updated.StudentID, &updated.Name, &updated.Age, &updated.Email, &updated.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrNoStudentWasFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Student{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Msg("error: scanning error")
		return models.Student{}, err
	}

	return updated, nil
}

// DeleteStudent removes a student by id. The grades, attendance and
// enrollment rows referencing the student are removed by the ON DELETE
// CASCADE clauses of the schema, so the whole removal is one atomic
// statement.
//
// Error handling:
//   - zero rows affected → [ErrNoStudentWasFound].
func (r *studentRepository) DeleteStudent(ctx context.Context, studentID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteStudent, studentID)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.DeleteStudent").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNoStudentWasFound
	}

	return nil
}
