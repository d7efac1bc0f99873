package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/zenith/internal/api/validation"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/service"
	"github.com/blaisecz/zenith/pkg/problem"
)

// NarrativeHandler handles the advisory status report endpoints.
type NarrativeHandler struct {
	service service.NarrativeService
}

// NewNarrativeHandler creates a new NarrativeHandler.
func NewNarrativeHandler(service service.NarrativeService) *NarrativeHandler {
	return &NarrativeHandler{service: service}
}

// Get handles GET /v1/users/{userId}/narrative
// @Summary Get status report
// @Description Short advisory text generated from the last 30 days of logs. If the text generator is unavailable, a fixed fallback message is returned with fallback=true.
// @Tags narrative
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.NarrativeResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/narrative [get]
func (h *NarrativeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	result, err := h.service.Generate(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "generate narrative")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Feedback handles POST /v1/users/{userId}/narrative/feedback
// @Summary Rate a status report
// @Description Attach a 1-5 rating and optional comment to a previous narrative by its trace ID.
// @Tags narrative
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.NarrativeFeedbackRequest true "Feedback"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/narrative/feedback [post]
func (h *NarrativeHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.NarrativeFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, r, err, "submit feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
