package handler

import (
	"fmt"
	"net/http"

	"github.com/blaisecz/zenith/internal/service"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(service service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles GET /v1/users/{userId}/export
// @Summary Export all data
// @Description Download the user, protocols and logs as a single JSON document.
// @Tags users
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.Export
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/export [get]
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "userId", "user")
	if !ok {
		return
	}

	export, err := h.service.Export(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "export data")
		return
	}

	filename := fmt.Sprintf("zenith-export-%s.json", export.ExportedAt.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	writeJSON(w, http.StatusOK, export)
}
