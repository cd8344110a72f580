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

func (h *Handler) assignGrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var grade models.GradeCreate
	if err := json.NewDecoder(r.Body).Decode(&grade); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	assignedGrade, err := h.services.RecordsService.AssignGrade(ctx, grade)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUnknownStudentOrCourse):
			log.Err(err).Msg("student or course not found")
			http.Error(w, "student or course not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during grade assignment")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, assignedGrade, http.StatusOK)
}

// listGradesOfStudent serves the admin view: any student's grades,
// selected by the path parameter.
func (h *Handler) listGradesOfStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	studentID, err := studentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid student id")
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	grades, err := h.services.RecordsService.ListGradesForStudent(ctx, studentID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during grade listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, grades, http.StatusOK)
}

// myGrades serves the student view: the caller's own grades, bound to
// the principal resolved from the token subject.
func (h *Handler) myGrades(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	grades, err := h.services.RecordsService.ListGradesForStudent(ctx, principal.ID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during grade listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, grades, http.StatusOK)
}
