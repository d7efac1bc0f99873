package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/blaisecz/zenith/internal/api/validation"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/service"
	"github.com/blaisecz/zenith/pkg/problem"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Generate handles POST /v1/users/{userId}/reports
// @Summary Generate a monthly report
// @Description Summarize a month and store the result. Every call stores a new report, including repeated calls for the same month. Responds 204 when the month has no logs or the user has no protocols.
// @Tags reports
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.GenerateReportRequest false "Month (defaults to the current month)"
// @Success 201 {object} domain.MonthlyReport "Report stored"
// @Success 204 "Nothing to report"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/reports [post]
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	// Body is optional
	var req domain.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	report, err := h.service.Generate(r.Context(), userID, req.Month)
	if err != nil {
		writeServiceError(w, r, err, "generate report")
		return
	}
	if report == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

// List handles GET /v1/users/{userId}/reports
// @Summary List monthly reports
// @Description Stored reports, newest first.
// @Tags reports
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ReportListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/reports [get]
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	reports, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "list reports")
		return
	}

	writeJSON(w, http.StatusOK, domain.ReportListResponse{Data: reports})
}
