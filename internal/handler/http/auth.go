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

func (h *Handler) loginAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var login models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundAdmin, err := h.services.AuthService.LoginAdmin(ctx, login.Username, login.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoAdminWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no admin was found/wrong password")
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundAdmin.AdminID).Str("username", foundAdmin.Username).Msg("admin successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundAdmin.Username, models.RoleAdmin)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString, TokenType: "bearer"}, http.StatusOK)
}

func (h *Handler) loginStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var login models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// students log in with their email address in the username field
	foundStudent, err := h.services.AuthService.LoginStudent(ctx, login.Username, login.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoStudentWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no student was found/wrong password")
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during student login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundStudent.StudentID).Str("email", foundStudent.Email).Msg("student successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundStudent.Email, models.RoleStudent)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString, TokenType: "bearer"}, http.StatusOK)
}

// createAdmin is the unauthenticated admin bootstrap endpoint. It is
// enabled only through the allow-admin-signup configuration switch and
// responds with 403 Forbidden otherwise.
func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var admin models.AdminCreate
	if err := json.NewDecoder(r.Body).Decode(&admin); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredAdmin, err := h.services.AuthService.RegisterAdmin(ctx, admin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminSignupDisabled):
			log.Err(err).Msg("admin signup is disabled")
			http.Error(w, "admin signup is disabled", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, registeredAdmin, http.StatusOK)
}
