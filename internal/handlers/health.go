package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is a pure liveness probe; it never touches the store.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "Backend is running!")
}
