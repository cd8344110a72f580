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

func (h *Handler) markAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var attendance models.AttendanceCreate
	if err := json.NewDecoder(r.Body).Decode(&attendance); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	mark, err := h.services.RecordsService.MarkAttendance(ctx, attendance)
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
			log.Err(err).Msg("unexpected error occurred during attendance marking")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, mark, http.StatusOK)
}

// listAttendanceOfStudent serves the admin view: any student's
// attendance, selected by the path parameter.
func (h *Handler) listAttendanceOfStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	studentID, err := studentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid student id")
		http.Error(w, "invalid student id", http.StatusBadRequest)
		return
	}

	marks, err := h.services.RecordsService.ListAttendanceForStudent(ctx, studentID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during attendance listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, marks, http.StatusOK)
}

// myAttendance serves the student view: the caller's own attendance,
// bound to the principal resolved from the token subject.
func (h *Handler) myAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	marks, err := h.services.RecordsService.ListAttendanceForStudent(ctx, principal.ID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during attendance listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, marks, http.StatusOK)
}
