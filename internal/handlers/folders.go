package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"ingest_api/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List a pipeline folder
// @Description  Regular, non-hidden files of one of: watch, processing, processed, output, error.
// @Tags         folders
// @Produce      json
// @Param        name  path  string  true  "Folder name"  Enums(watch,processing,processed,output,error)
// @Success      200  {object}  models.FolderListing
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/folders/{name} [get]
func (h *Handler) getFolder(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	listing, err := h.services.Folders.List(ctx, name)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, listing)
	case errors.Is(err, service.ErrUnknownFolder):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid folder: %s", name)})
	case errors.Is(err, service.ErrFolderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError,
			fmt.Sprintf("Error listing folder: %v", err), "folder_list_failed", err, "folder", name)
	}
}
