package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createAdmin = `INSERT INTO admins (username, password_hash)
    VALUES ($1, $2)
    RETURNING admin_id, username, password_hash;`

	findAdminByUsername = `SELECT admin_id, username, password_hash
    FROM admins
    WHERE username = $1;`

	createStudent = `INSERT INTO students (name, age, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING student_id, name, age, email, password_hash;`

	getStudent = `SELECT student_id, name, age, email, password_hash
    FROM students
    WHERE student_id = $1;`

	findStudentByEmail = `SELECT student_id, name, age, email, password_hash
    FROM students
    WHERE email = $1;`

	listStudents = `SELECT student_id, name, age, email, password_hash
    FROM students
    ORDER BY student_id;`

	updateStudent = `UPDATE students
    SET name = $1, age = $2, email = $3, password_hash = $4
    WHERE student_id = $5
    RETURNING student_id, name, age, email, password_hash;`

	deleteStudent = `DELETE FROM students
    WHERE student_id = $1;`

	createCourse = `INSERT INTO courses (name, description)
    VALUES ($1, $2)
    RETURNING course_id, name, description;`

	listCourses = `SELECT course_id, name, description
    FROM courses
    ORDER BY course_id;`

	studentExists = `SELECT EXISTS (SELECT 1 FROM students WHERE student_id = $1);`
	courseExists  = `SELECT EXISTS (SELECT 1 FROM courses WHERE course_id = $1);`

	// re-enrolling an already enrolled pair must not duplicate the edge
	enrollStudent = `INSERT INTO student_courses (student_id, course_id)
    VALUES ($1, $2)
    ON CONFLICT (student_id, course_id) DO NOTHING;`

	assignGrade = `INSERT INTO grades (student_id, course_id, grade)
    VALUES ($1, $2, $3)
    RETURNING grade_id, student_id, course_id, grade;`

	markAttendance = `INSERT INTO attendance (student_id, course_id, date, present)
    VALUES ($1, $2, $3, $4)
    RETURNING attendance_id, student_id, course_id, date, present;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// dollar placeholders. Used for the per-student listing queries where
// the WHERE clause is assembled programmatically.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListCoursesForStudentQuery builds the SELECT that resolves the
// courses a student is enrolled in via the student_courses association
// table.
func buildListCoursesForStudentQuery(_ context.Context, studentID int64) (string, []any, error) {
	query, args, err := psql.
		Select("c.course_id", "c.name", "c.description").
		From("courses c").
		Join("student_courses sc ON sc.course_id = c.course_id").
		Where(sq.Eq{"sc.student_id": studentID}).
		OrderBy("c.course_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListGradesForStudentQuery builds the SELECT returning all grade
// rows for the given student. No ordering is guaranteed by contract;
// rows come back in store order.
func buildListGradesForStudentQuery(_ context.Context, studentID int64) (string, []any, error) {
	query, args, err := psql.
		Select("grade_id", "student_id", "course_id", "grade").
		From("grades").
		Where(sq.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListAttendanceForStudentQuery builds the SELECT returning all
// attendance rows for the given student.
func buildListAttendanceForStudentQuery(_ context.Context, studentID int64) (string, []any, error) {
	query, args, err := psql.
		Select("attendance_id", "student_id", "course_id", "date", "present").
		From("attendance").
		Where(sq.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
