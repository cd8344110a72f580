package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/internal/store"
	"github.com/MKhiriev/go-student-desk/models"
)

// recordsService is the concrete implementation of RecordsService.
// It translates request inputs (like the attendance status enumeration)
// into storage form and delegates to the repositories.
type recordsService struct {
	gradeRepository      store.GradeRepository
	attendanceRepository store.AttendanceRepository

	logger *logger.Logger
}

// NewRecordsService constructs a RecordsService wired to the given
// repositories.
func NewRecordsService(grades store.GradeRepository, attendance store.AttendanceRepository, logger *logger.Logger) RecordsService {
	return &recordsService{
		gradeRepository:      grades,
		attendanceRepository: attendance,
		logger:               logger,
	}
}

// AssignGrade records a grading event. The student and course ids are
// not pre-checked; unknown references surface from the store as
// store.ErrUnknownStudentOrCourse.
func (s *recordsService) AssignGrade(ctx context.Context, grade models.GradeCreate) (models.Grade, error) {
	log := logger.FromContext(ctx)

	if grade.StudentID == 0 || grade.CourseID == 0 || grade.Grade == "" {
		log.Error().Msg("invalid grade data provided")
		return models.Grade{}, ErrInvalidDataProvided
	}

	assignedGrade, err := s.gradeRepository.AssignGrade(ctx, models.Grade{
		StudentID: grade.StudentID,
		CourseID:  grade.CourseID,
		Grade:     grade.Grade,
	})
	if err != nil {
		log.Err(err).Int64("student_id", grade.StudentID).Int64("course_id", grade.CourseID).Msg("grade assignment ended with error")
		return models.Grade{}, fmt.Errorf("grade assignment ended with error: %w", err)
	}

	return assignedGrade, nil
}

// ListGradesForStudent returns all grade rows for the given student.
func (s *recordsService) ListGradesForStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	grades, err := s.gradeRepository.ListGradesForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("grade listing failed: %w", err)
	}

	return grades, nil
}

// MarkAttendance records an attendance mark, translating the
// {present, absent} status enumeration into the stored boolean flag.
func (s *recordsService) MarkAttendance(ctx context.Context, attendance models.AttendanceCreate) (models.Attendance, error) {
	log := logger.FromContext(ctx)

	if attendance.StudentID == 0 || attendance.CourseID == 0 || attendance.Date.IsZero() {
		log.Error().Msg("invalid attendance data provided")
		return models.Attendance{}, ErrInvalidDataProvided
	}

	status, err := models.ParseAttendanceStatus(attendance.Status)
	if err != nil {
		log.Err(err).Msg("invalid attendance status provided")
		return models.Attendance{}, ErrInvalidDataProvided
	}

	mark, err := s.attendanceRepository.MarkAttendance(ctx, models.Attendance{
		StudentID: attendance.StudentID,
		CourseID:  attendance.CourseID,
		Date:      attendance.Date,
		Present:   status.Present(),
	})
	if err != nil {
		log.Err(err).Int64("student_id", attendance.StudentID).Int64("course_id", attendance.CourseID).Msg("attendance marking ended with error")
		return models.Attendance{}, fmt.Errorf("attendance marking ended with error: %w", err)
	}

	return mark, nil
}

// ListAttendanceForStudent returns all attendance rows for the given
// student.
func (s *recordsService) ListAttendanceForStudent(ctx context.Context, studentID int64) ([]models.Attendance, error) {
	marks, err := s.attendanceRepository.ListAttendanceForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("attendance listing failed: %w", err)
	}

	return marks, nil
}
