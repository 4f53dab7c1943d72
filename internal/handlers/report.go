package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"ingest_api/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Generate a PDF report
// @Description  Renders a summary of the processing history into the output folder and returns the artifact path.
// @Tags         report
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "success, path"
// @Failure      400  {object}  map[string]interface{}  "success=false, error"
// @Failure      500  {object}  map[string]string
// @Failure      501  {object}  map[string]string
// @Router       /api/report [get]
func (h *Handler) getReport(c *gin.Context) {
	ctx := c.Request.Context()

	path, err := h.services.Report.Generate(ctx)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "path": path})
	case errors.Is(err, service.ErrReportUnavailable):
		c.JSON(http.StatusNotImplemented, gin.H{"error": "PDF report generation not available"})
	case errors.Is(err, service.ErrNothingToReport):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No history to report"})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError,
			fmt.Sprintf("Error generating report: %v", err), "report_generate_failed", err)
	}
}
