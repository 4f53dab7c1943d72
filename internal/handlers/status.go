package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Current processing status
// @Description  Opaque snapshot written by the pipeline; an idle default when no job has run yet.
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	ctx := c.Request.Context()
	data, err := h.services.Status.Get(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			fmt.Sprintf("Error reading status: %v", err), "status_read_failed", err)
		return
	}
	c.JSON(http.StatusOK, data)
}
