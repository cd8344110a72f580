package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/internal/service"
	"github.com/MKhiriev/go-student-desk/internal/store"
	"github.com/MKhiriev/go-student-desk/internal/utils"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/go-chi/chi/v5"
)

// studentIDFromURL parses the {studentID} chi route parameter.
func studentIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "studentID"), 10, 64)
}

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var student models.StudentCreate
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdStudent, err := h.services.RegistryService.CreateStudent(ctx, student)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during student creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdStudent, http.StatusOK)
}

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	students, err := h.services.RegistryService.ListStudents(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during student listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, students, http.StatusOK)
}

func (h *Handler) getStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	studentID, err := studentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid student id")
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	student, err := h.services.RegistryService.GetStudent(ctx, studentID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoStudentWasFound):
			log.Err(err).Int64("id", studentID).Msg("student not found")
			http.Error(w, "student not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during student lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, student, http.StatusOK)
}

func (h *Handler) updateStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	studentID, err := studentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid student id")
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	var update models.StudentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedStudent, err := h.services.RegistryService.UpdateStudent(ctx, studentID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoStudentWasFound):
			log.Err(err).Int64("id", studentID).Msg("student not found")
			http.Error(w, "student not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during student update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updatedStudent, http.StatusOK)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	studentID, err := studentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid student id")
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	if err := h.services.RegistryService.DeleteStudent(ctx, studentID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoStudentWasFound):
			log.Err(err).Int64("id", studentID).Msg("student not found")
			http.Error(w, "student not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during student deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, map[string]string{"detail": "Deleted successfully"}, http.StatusOK)
}
