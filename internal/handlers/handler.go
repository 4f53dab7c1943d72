package handlers

import (
	"net/http"

	"ingest_api/internal/logger"
	"ingest_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.recoverToJSON())
	router.Use(corsMiddleware)
	router.Use(requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.index)
	router.GET("/api/health", h.health)
	router.GET("/api/status", h.getStatus)
	router.GET("/api/history", h.getHistory)
	router.DELETE("/api/history", h.clearHistory)
	router.GET("/api/logs", h.getLogs)
	router.DELETE("/api/logs", h.clearLogs)
	router.GET("/api/folders/:name", h.getFolder)
	router.GET("/api/report", h.getReport)

	// Anything else, any method, is a JSON 404. OPTIONS never reaches here;
	// the CORS middleware answers preflights for every path.
	router.NoRoute(h.notFound)

	return router
}

// recoverToJSON converts handler panics into the uniform JSON error shape
// instead of gin's default empty 500.
func (h *Handler) recoverToJSON() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if h.log != nil {
			h.log.Errorw("handler_panic", "path", c.Request.URL.Path, "panic", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "path", c.Request.URL.Path}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// @Summary      API discovery
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Ingest Engine API",
		"endpoints": []string{
			"/api/status",
			"/api/history",
			"/api/logs",
			"/api/folders/{name}",
			"/api/health",
			"/api/report",
		},
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
