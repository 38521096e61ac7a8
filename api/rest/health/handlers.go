package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: "aurafashions",
		Version: "1.0.0",
	})
}

// greets API visitors at the root path
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Message: "Welcome to AuraFashions API",
		Docs:    "/docs",
		Health:  "ok",
	})
}
