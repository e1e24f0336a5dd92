package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// APIInfo serves basic discovery data on the root path.
func APIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Plant Guide API",
		"version":     Version,
		"description": "AI-powered plant care guidance service",
		"endpoints": gin.H{
			"health":         "/healthcheck",
			"generate_guide": "/api/generate-plant-guide",
			"files":          "/files",
		},
	})
}
