package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// corsMiddleware stamps every response with permissive cross-origin headers
// and short-circuits OPTIONS preflights with an empty 200. The dashboard is
// served from a different origin than the pipeline host, so every endpoint
// must answer preflights.
func corsMiddleware(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	if c.Request.Method == http.MethodOptions {
		c.Header("Content-Type", "application/json")
		c.AbortWithStatus(http.StatusOK)
		return
	}
	c.Next()
}

// requestIDMiddleware assigns each request an ID, honoring one supplied by
// the caller, and echoes it back so dashboard traces line up with server
// logs.
func requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("requestID", id)
	c.Header(requestIDHeader, id)
	c.Next()
}
