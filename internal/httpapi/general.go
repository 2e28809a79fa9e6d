package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serverName  = "Aquarium MCP"
	welcomeHTML = "<h1>Aquarium MCP</h1>" +
		"<p>Welcome to the Aquarium CRM tools over the Model Context Protocol.</p>"
	aboutText = "About Aquarium MCP: the Aquarium CRM exposed as MCP tools and REST endpoints."
)

func registerGeneral(r gin.IRoutes, version string) {
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(welcomeHTML))
	})
	r.GET("/about", func(c *gin.Context) {
		c.String(http.StatusOK, aboutText)
	})
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "running",
			"server":  serverName,
			"version": version,
		})
	})
}
