package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/service"
)

// validate checks request payloads against their `validate` struct tags.
var validate = validator.New()

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Status string    `json:"status"`
	Data   any       `json:"data,omitempty"`
	Error  *apiError `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(apiResponse{Status: "ok", Data: data})
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(apiResponse{
		Status: "error",
		Error:  &apiError{Code: code, Message: message},
	})
	if err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// decodeJSON parses and validates a request body. It writes the 400 itself
// and reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid JSON body")
		return false
	}

	err = validate.Struct(dst)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return false
	}

	return true
}

// respondServiceError maps domain errors onto the HTTP taxonomy: missing
// records are 404s, boundary violations are 400s, anything else is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrUserGoalNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, repository.ErrActiveGoalExists),
		errors.Is(err, repository.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidPeriod):
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}
