// Package handler exposes the signup and login flows over HTTP. It owns
// request decoding and status mapping only; all decisions live in the user
// service.
package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/secureform/signupd/internal/form"
	"github.com/secureform/signupd/internal/user"
	"github.com/secureform/signupd/pkg/validator"
)

type Handler struct {
	svc    *user.Service
	logger *slog.Logger
}

func New(svc *user.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{svc: svc, logger: logger}
}

// Router builds the service routes.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err = h.svc.Signup(r.Context(), sub)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Signup successful!"})
	case validator.IsValidationError(err):
		writeFieldErrors(w, validator.ExtractValidationErrors(err))
	case errors.Is(err, user.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "User details already exist")
	default:
		h.logger.ErrorContext(r.Context(), "signup failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err = h.svc.Login(r.Context(), sub.Raw(form.FieldName), sub.Raw(form.FieldPassword))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful!"})
	case validator.IsValidationError(err):
		writeFieldErrors(w, validator.ExtractValidationErrors(err))
	case errors.Is(err, user.ErrInvalidCredentials):
		// One message for unknown name and wrong password alike.
		writeError(w, http.StatusUnauthorized, "Incorrect details")
	default:
		h.logger.ErrorContext(r.Context(), "login failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
