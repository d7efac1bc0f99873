package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/blaisecz/zenith/internal/api/validation"
	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/service"
	"github.com/blaisecz/zenith/pkg/pagination"
	"github.com/blaisecz/zenith/pkg/problem"
	"github.com/google/uuid"
)

type HabitLogHandler struct {
	service service.HabitLogService
}

func NewHabitLogHandler(service service.HabitLogService) *HabitLogHandler {
	return &HabitLogHandler{service: service}
}

// Upsert handles PUT /v1/users/{userId}/logs
// @Summary Record a protocol day
// @Description Create or update the log for (protocol, date). Absent fields keep their stored value; a new log without "completed" is recorded as not completed. Returns 201 when created, 200 when updated.
// @Tags logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.UpsertHabitLogRequest true "Log fields"
// @Success 201 {object} domain.HabitLog "Log created"
// @Success 200 {object} domain.HabitLog "Log updated"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or protocol not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/logs [put]
func (h *HabitLogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	var req domain.UpsertHabitLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, created, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err, "record log")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, log)
}

// List handles GET /v1/users/{userId}/logs
// @Summary List logs
// @Description Fetch paginated log history, newest day first. Filter by protocol and day range.
// @Tags logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param habit_id query string false "Protocol UUID" format(uuid)
// @Param from query string false "First day (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string false "Last day (YYYY-MM-DD)" example(2024-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.HabitLogListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/logs [get]
func (h *HabitLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	filter, fieldErrors := parseLogFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err, "list logs")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseLogFilter(r *http.Request) (domain.HabitLogFilter, []problem.FieldError) {
	var filter domain.HabitLogFilter
	var fieldErrors []problem.FieldError
	query := r.URL.Query()

	if habitStr := query.Get("habit_id"); habitStr != "" {
		habitID, err := uuid.Parse(habitStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "habit_id",
				Message: "must be a valid UUID",
			})
		} else {
			filter.HabitID = &habitID
		}
	}

	for _, p := range []struct {
		name string
		dst  *string
	}{{"from", &filter.From}, {"to", &filter.To}} {
		value := query.Get(p.name)
		if value == "" {
			continue
		}
		if _, err := calendar.ParseDay(value); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   p.name,
				Message: "must be a date in YYYY-MM-DD format",
			})
			continue
		}
		*p.dst = value
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	if cursor := query.Get("cursor"); cursor != "" {
		if _, err := pagination.DecodeCursor(cursor); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "cursor",
				Message: "is invalid",
			})
		} else {
			filter.Cursor = cursor
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
