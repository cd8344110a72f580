// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create an admin
	// fails because an admin with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an attempt to create or update a
	// student fails because the email address is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrCourseAlreadyExists is returned when an attempt to create a course
	// fails because a course with the same name already exists.
	ErrCourseAlreadyExists = errors.New("course name already exists")

	// ErrNoAdminWasFound is returned when a lookup by username matches no
	// admin record.
	ErrNoAdminWasFound = errors.New("no admin was found")

	// ErrNoStudentWasFound is returned when a lookup, update or delete
	// targets a student id or email that does not exist.
	ErrNoStudentWasFound = errors.New("no student was found")

	// ErrNoCourseWasFound is returned when an enroll operation references a
	// course id that does not exist.
	ErrNoCourseWasFound = errors.New("no course was found")

	// ErrUnknownStudentOrCourse is returned when an insert into grades or
	// attendance violates a foreign-key constraint, i.e. references a
	// student or course that is not present in the database.
	ErrUnknownStudentOrCourse = errors.New("unknown student or course referenced")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
