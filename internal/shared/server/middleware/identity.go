package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userId"

	// defaultUserID scopes data when no identity header is present. The app
	// serves a single user per deployment; authentication proper happens in
	// the fronting proxy, which forwards the identity via X-User-Id.
	defaultUserID = "local"
)

// Identity stores the caller identity from the X-User-Id header in context,
// falling back to the single-user default.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if id == "" {
			id = defaultUserID
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the Identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return defaultUserID
}
