package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-student-desk/internal/store"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourse_HandlerSuccess(t *testing.T) {
	h := newHandlerWithRegistry(&mockRegistryService{
		createCourseFn: func(_ context.Context, course models.CourseCreate) (models.Course, error) {
			assert.Equal(t, "Mathematics", course.Name)
			return models.Course{CourseID: 1, Name: course.Name, Description: course.Description}, nil
		},
	})

	body := models.CourseCreate{Name: "Mathematics", Description: "Numbers"}
	req := newRequest(t, http.MethodPost, "/courses", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.createCourse(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Course
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, int64(1), created.CourseID)
}

func TestCreateCourse_HandlerDuplicateName(t *testing.T) {
	h := newHandlerWithRegistry(&mockRegistryService{
		createCourseFn: func(_ context.Context, _ models.CourseCreate) (models.Course, error) {
			return models.Course{}, store.ErrCourseAlreadyExists
		},
	})

	req := newRequest(t, http.MethodPost, "/courses", encodeBody(t, models.CourseCreate{Name: "Mathematics"}))
	rec := httptest.NewRecorder()

	h.createCourse(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListCourses_Handler(t *testing.T) {
	h := newHandlerWithRegistry(&mockRegistryService{
		listCoursesFn: func(_ context.Context) ([]models.Course, error) {
			return []models.Course{{CourseID: 1, Name: "Mathematics"}}, nil
		},
	})

	req := newRequest(t, http.MethodGet, "/courses", nil)
	rec := httptest.NewRecorder()

	h.listCourses(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var courses []models.Course
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&courses))
	require.Len(t, courses, 1)
}

func TestEnroll_HandlerSuccess(t *testing.T) {
	called := false
	h := newHandlerWithRegistry(&mockRegistryService{
		enrollFn: func(_ context.Context, studentID, courseID int64) error {
			called = true
			assert.Equal(t, int64(1), studentID)
			assert.Equal(t, int64(2), courseID)
			return nil
		},
	})

	body := models.EnrollRequest{StudentID: 1, CourseID: 2}
	req := newRequest(t, http.MethodPost, "/enroll", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.enroll(rec, req)

	assert.True(t, called, "Enroll should have been called")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"detail": "Student enrolled successfully"}`, rec.Body.String())
}

func TestEnroll_HandlerUnknownReferences(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unknown student", store.ErrNoStudentWasFound},
		{"unknown course", store.ErrNoCourseWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithRegistry(&mockRegistryService{
				enrollFn: func(_ context.Context, _, _ int64) error {
					return tt.err
				},
			})

			req := newRequest(t, http.MethodPost, "/enroll", encodeBody(t, models.EnrollRequest{StudentID: 1, CourseID: 2}))
			rec := httptest.NewRecorder()

			h.enroll(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestEnroll_HandlerStoreError(t *testing.T) {
	h := newHandlerWithRegistry(&mockRegistryService{
		enrollFn: func(_ context.Context, _, _ int64) error {
			return errors.New("db down")
		},
	})

	req := newRequest(t, http.MethodPost, "/enroll", encodeBody(t, models.EnrollRequest{StudentID: 1, CourseID: 2}))
	rec := httptest.NewRecorder()

	h.enroll(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListCoursesOfStudent_Handler(t *testing.T) {
	h := newHandlerWithRegistry(&mockRegistryService{
		listCoursesForStudentFn: func(_ context.Context, studentID int64) ([]models.Course, error) {
			assert.Equal(t, int64(7), studentID)
			return []models.Course{{CourseID: 1, Name: "Mathematics"}}, nil
		},
	})

	req := withStudentID(newRequest(t, http.MethodGet, "/students/7/courses", nil), "7")
	rec := httptest.NewRecorder()

	h.listCoursesOfStudent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var courses []models.Course
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&courses))
	require.Len(t, courses, 1)
}

func TestListCoursesOfStudent_HandlerInvalidID(t *testing.T) {
	h := newHandlerWithRegistry(&mockRegistryService{})

	req := withStudentID(newRequest(t, http.MethodGet, "/students/abc/courses", nil), "abc")
	rec := httptest.NewRecorder()

	h.listCoursesOfStudent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
