package handler

import (
	"net/http"

	"github.com/blaisecz/zenith/internal/service"
)

// AnalyticsHandler serves the derived dashboard views.
type AnalyticsHandler struct {
	service service.DashboardService
}

func NewAnalyticsHandler(service service.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Dashboard handles GET /v1/users/{userId}/dashboard
// @Summary Get dashboard
// @Description Today's completion rate, 14-day series, 28-day heat map, streak ranking, next protocol window, recent activity and level. Days are computed in the user's timezone.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/dashboard [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "compute dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

// Level handles GET /v1/users/{userId}/level
// @Summary Get level
// @Description Experience points and rank from lifetime completions (10 XP each).
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.Level
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/level [get]
func (h *AnalyticsHandler) Level(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	level, err := h.service.Level(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "compute level")
		return
	}

	writeJSON(w, http.StatusOK, level)
}

// Streak handles GET /v1/users/{userId}/protocols/{habitId}/streak
// @Summary Get protocol streak
// @Description Current streak (alive if the last completion was today or yesterday) and longest streak ever.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Protocol UUID" format(uuid)
// @Success 200 {object} domain.ProtocolStreak
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/protocols/{habitId}/streak [get]
func (h *AnalyticsHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}
	habitID, ok := uuidParam(w, r, "habitId", "protocol")
	if !ok {
		return
	}

	streak, err := h.service.Streak(r.Context(), userID, habitID)
	if err != nil {
		writeServiceError(w, r, err, "compute streak")
		return
	}

	writeJSON(w, http.StatusOK, streak)
}
