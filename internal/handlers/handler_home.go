package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes registers the health and debug endpoints.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	r.GET("/api/debug", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Foundly API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}
