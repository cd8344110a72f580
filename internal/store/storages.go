package store

import (
	"context"

	"github.com/MKhiriev/go-student-desk/internal/config"
	"github.com/MKhiriev/go-student-desk/internal/logger"
)

// Storages aggregates all repository implementations behind their
// interfaces. One Storages value is created at startup and injected into
// the service layer.
type Storages struct {
	AdminRepository      AdminRepository
	StudentRepository    StudentRepository
	CourseRepository     CourseRepository
	EnrollmentRepository EnrollmentRepository
	GradeRepository      GradeRepository
	AttendanceRepository AttendanceRepository
}

// NewStorages connects to PostgreSQL and wires every repository to the
// shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, *DB, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, err
	}

	return &Storages{
		AdminRepository:      NewAdminRepository(db, log),
		StudentRepository:    NewStudentRepository(db, log),
		CourseRepository:     NewCourseRepository(db, log),
		EnrollmentRepository: NewEnrollmentRepository(db, log),
		GradeRepository:      NewGradeRepository(db, log),
		AttendanceRepository: NewAttendanceRepository(db, log),
	}, db, nil
}
