package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/logger"
	"github.com/blaisecz/zenith/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// uuidParam parses a UUID path parameter, writing a 400 on failure.
func uuidParam(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		problem.BadRequest("Invalid " + label + " ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError maps domain errors to problem responses. action names
// the failed operation for the 500 detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrProtocolNotFound):
		problem.NotFound("Protocol not found").WithInstance(r.URL.Path).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").WithInstance(r.URL.Path).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).WithInstance(r.URL.Path).Write(w)
	default:
		logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		problem.InternalError("Failed to " + action).Write(w)
	}
}
