package respond

import (
	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// FailureResponse is the standardized failure object. Every error leaving the
// API uses this shape; callers branch on the HTTP status.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Fail logs and sends a standardized failure response.
func Fail(c *gin.Context, status int, message string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, FailureResponse{Success: false, Error: message})
}
