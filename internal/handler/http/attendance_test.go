package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-student-desk/internal/store"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendance_HandlerSuccess(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	h := newHandlerWithRecords(&mockRecordsService{
		markAttendanceFn: func(_ context.Context, attendance models.AttendanceCreate) (models.Attendance, error) {
			assert.Equal(t, "present", attendance.Status)
			return models.Attendance{AttendanceID: 5, StudentID: attendance.StudentID, CourseID: attendance.CourseID, Date: attendance.Date, Present: true}, nil
		},
	})

	body := models.AttendanceCreate{StudentID: 1, CourseID: 2, Date: date, Status: "present"}
	req := newRequest(t, http.MethodPost, "/attendance", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.markAttendance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var mark models.Attendance
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&mark))
	assert.Equal(t, int64(5), mark.AttendanceID)
	assert.True(t, mark.Present)
}

func TestMarkAttendance_HandlerUnknownReferences(t *testing.T) {
	h := newHandlerWithRecords(&mockRecordsService{
		markAttendanceFn: func(_ context.Context, _ models.AttendanceCreate) (models.Attendance, error) {
			return models.Attendance{}, store.ErrUnknownStudentOrCourse
		},
	})

	body := models.AttendanceCreate{StudentID: 404, CourseID: 2, Date: time.Now(), Status: "present"}
	req := newRequest(t, http.MethodPost, "/attendance", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.markAttendance(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAttendanceOfStudent_Handler(t *testing.T) {
	h := newHandlerWithRecords(&mockRecordsService{
		listAttendanceForStudentFn: func(_ context.Context, studentID int64) ([]models.Attendance, error) {
			assert.Equal(t, int64(7), studentID)
			return []models.Attendance{{AttendanceID: 5, StudentID: 7, Present: true}}, nil
		},
	})

	req := withStudentID(newRequest(t, http.MethodGet, "/students/7/attendance", nil), "7")
	rec := httptest.NewRecorder()

	h.listAttendanceOfStudent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var marks []models.Attendance
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&marks))
	require.Len(t, marks, 1)
}

func TestMyAttendance_BoundToPrincipal(t *testing.T) {
	h := newHandlerWithRecords(&mockRecordsService{
		listAttendanceForStudentFn: func(_ context.Context, studentID int64) ([]models.Attendance, error) {
			assert.Equal(t, int64(7), studentID)
			return []models.Attendance{{AttendanceID: 5, StudentID: 7, Present: false}}, nil
		},
	})

	principal := models.Principal{ID: 7, Subject: "alice@example.com", Role: models.RoleStudent}
	req := withPrincipal(newRequest(t, http.MethodGet, "/me/attendance", nil), principal)
	rec := httptest.NewRecorder()

	h.myAttendance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var marks []models.Attendance
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&marks))
	require.Len(t, marks, 1)
	assert.False(t, marks[0].Present)
}

func TestMyAttendance_NoPrincipal(t *testing.T) {
	h := newHandlerWithRecords(&mockRecordsService{
		listAttendanceForStudentFn: func(_ context.Context, _ int64) ([]models.Attendance, error) {
			t.Fatal("ListAttendanceForStudent should not be called")
			return nil, nil
		},
	})

	req := newRequest(t, http.MethodGet, "/me/attendance", nil)
	rec := httptest.NewRecorder()

	h.myAttendance(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
