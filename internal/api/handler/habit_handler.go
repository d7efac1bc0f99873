package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/zenith/internal/api/validation"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/service"
	"github.com/blaisecz/zenith/pkg/problem"
)

type HabitHandler struct {
	service service.HabitService
}

func NewHabitHandler(service service.HabitService) *HabitHandler {
	return &HabitHandler{service: service}
}

// List handles GET /v1/users/{userId}/protocols
// @Summary List protocols
// @Description List protocols with scheduled ones first (by window), then unscheduled by creation time. The first call for a new user seeds the default protocol set.
// @Tags protocols
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.HabitListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols [get]
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	habits, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "list protocols")
		return
	}
	if habits == nil {
		habits = []domain.Habit{}
	}

	writeJSON(w, http.StatusOK, domain.HabitListResponse{Data: habits})
}

// Create handles POST /v1/users/{userId}/protocols
// @Summary Create a protocol
// @Description Create an active protocol. Archetype defaults to DISCIPLINE; alarms are off unless requested.
// @Tags protocols
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateHabitRequest true "Protocol"
// @Success 201 {object} domain.Habit
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols [post]
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	habit, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "create protocol")
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}

// Update handles PATCH /v1/users/{userId}/protocols/{habitId}
// @Summary Update a protocol
// @Description Partially update a protocol. Absent fields are unchanged; clear_schedule removes the window.
// @Tags protocols
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Protocol UUID" format(uuid)
// @Param request body domain.UpdateHabitRequest true "Fields to update"
// @Success 200 {object} domain.Habit
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols/{habitId} [patch]
func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}
	habitID, ok := uuidParam(w, r, "habitId", "protocol")
	if !ok {
		return
	}

	var req domain.UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	habit, err := h.service.Update(r.Context(), userID, habitID, &req)
	if err != nil {
		writeServiceError(w, r, err, "update protocol")
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

// Delete handles DELETE /v1/users/{userId}/protocols/{habitId}
// @Summary Delete a protocol
// @Description Delete a protocol and all of its logs.
// @Tags protocols
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Protocol UUID" format(uuid)
// @Success 204 "Protocol deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols/{habitId} [delete]
func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}
	habitID, ok := uuidParam(w, r, "habitId", "protocol")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, habitID); err != nil {
		writeServiceError(w, r, err, "delete protocol")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearAll handles DELETE /v1/users/{userId}/protocols
// @Summary Delete all protocols
// @Description Delete every protocol and log of the user. The default set is not seeded again afterwards.
// @Tags protocols
// @Param userId path string true "User UUID" format(uuid)
// @Success 204 "Protocols cleared"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols [delete]
func (h *HabitHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	if err := h.service.ClearAll(r.Context(), userID); err != nil {
		writeServiceError(w, r, err, "clear protocols")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
