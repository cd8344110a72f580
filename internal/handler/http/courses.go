package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/internal/service"
	"github.com/MKhiriev/go-student-desk/internal/store"
	"github.com/MKhiriev/go-student-desk/internal/utils"
	"github.com/MKhiriev/go-student-desk/models"
)

func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var course models.CourseCreate
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdCourse, err := h.services.RegistryService.CreateCourse(ctx, course)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCourseAlreadyExists):
			log.Err(err).Msg("course name already exists")
			http.Error(w, "course name already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during course creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdCourse, http.StatusOK)
}

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	courses, err := h.services.RegistryService.ListCourses(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during course listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var enroll models.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&enroll); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RegistryService.Enroll(ctx, enroll.StudentID, enroll.CourseID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoStudentWasFound) || errors.Is(err, store.ErrNoCourseWasFound):
			log.Err(err).Msg("student or course not found")
			http.Error(w, "student or course not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during enrollment")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, map[string]string{"detail": "Student enrolled successfully"}, http.StatusOK)
}

func (h *Handler) listCoursesOfStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	studentID, err := studentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid student id")
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	courses, err := h.services.RegistryService.ListCoursesForStudent(ctx, studentID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during course listing for student")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}
