package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agricure/api/internal/middleware"
	"github.com/agricure/api/internal/models"
)

// Session handles GET /api/v1/session and returns who the dashboard is
// acting for.
func Session(c *gin.Context) {
	c.JSON(http.StatusOK, sessionFrom(c))
}

// sessionFrom returns the request's session, or an anonymous default one
// when the Session middleware is not installed.
func sessionFrom(c *gin.Context) models.Session {
	if session, ok := middleware.GetSession(c); ok {
		return session
	}
	return models.Session{IsDefault: true}
}
