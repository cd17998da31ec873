package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/studysync/studysync/internal/repository"
	"github.com/studysync/studysync/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondError translates service and repository errors into categorized
// responses. Unexpected faults become a generic 500 and are logged; the
// caller never sees a raw internal error.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		respondJSON(w, http.StatusConflict, errorResponse{Error: "an account with this email already exists"})
	case errors.Is(err, repository.ErrCourseNotFound),
		errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrTaskNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
