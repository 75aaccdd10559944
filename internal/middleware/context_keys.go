package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey    = contextKey("userID")
	userEmailKey = contextKey("userEmail")
)

// GetUserIDFromContext retrieves the authenticated user ID.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserEmailFromContext returns the email claim of the session token, if any.
func GetUserEmailFromContext(c *gin.Context) string {
	email, _ := c.Request.Context().Value(userEmailKey).(string)
	return email
}
