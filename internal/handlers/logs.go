package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Recent log entries
// @Description  Entries reconstructed from the tail of the engine log; multi-line messages (stack traces) are re-joined.
// @Tags         logs
// @Produce      json
// @Success      200  {array}   models.LogEntry
// @Failure      500  {object}  map[string]string
// @Router       /api/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	ctx := c.Request.Context()
	entries, err := h.services.EventLog.Tail(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			fmt.Sprintf("Error reading logs: %v", err), "logs_read_failed", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary      Clear the engine log
// @Tags         logs
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "cleared, message"
// @Failure      500  {object}  map[string]string
// @Router       /api/logs [delete]
func (h *Handler) clearLogs(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.EventLog.Clear(ctx); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			fmt.Sprintf("Error clearing logs: %v", err), "logs_clear_failed", err)
		return
	}
	if h.log != nil {
		h.log.Infow("logs cleared via API")
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true, "message": "Logs cleared"})
}
