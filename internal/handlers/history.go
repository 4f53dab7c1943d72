package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Processing history
// @Description  Completed jobs as recorded by the pipeline, verbatim.
// @Tags         history
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	ctx := c.Request.Context()
	data, err := h.services.History.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			fmt.Sprintf("Error reading history: %v", err), "history_read_failed", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary      Clear processing history
// @Tags         history
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "cleared, message"
// @Failure      500  {object}  map[string]string
// @Router       /api/history [delete]
func (h *Handler) clearHistory(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.History.Clear(ctx); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			fmt.Sprintf("Error clearing history: %v", err), "history_clear_failed", err)
		return
	}
	if h.log != nil {
		h.log.Infow("history cleared via API")
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true, "message": "History cleared"})
}
