package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agricure/api/internal/models"
)

const (
	// SessionKey is the context key for the current session
	SessionKey = "session"
	// UserHeader carries the dashboard user's display name
	UserHeader = "X-User-Name"

	maxUserNameLength = 64
)

// Session resolves who is using the dashboard from the X-User-Name header,
// falling back to defaultUser, and stores it in the context.
func Session(defaultUser string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.Session{UserName: defaultUser, IsDefault: true}

		if name := strings.TrimSpace(c.GetHeader(UserHeader)); name != "" && len(name) <= maxUserNameLength {
			session = models.Session{UserName: name}
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// GetSession retrieves the session from the Gin context.
// The second result is false if the Session middleware did not run.
func GetSession(c *gin.Context) (models.Session, bool) {
	if v, exists := c.Get(SessionKey); exists {
		if session, ok := v.(models.Session); ok {
			return session, true
		}
	}
	return models.Session{}, false
}
