package auth

import "github.com/gin-gonic/gin"

// RoleAdmin is the role the booking core accepts as the admin capability.
const RoleAdmin = "admin"

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return getString(c, "userID")
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	return getString(c, "userEmail")
}

// GetUserRole returns the authenticated user's role or empty string.
func GetUserRole(c *gin.Context) string {
	return getString(c, "userRole")
}

// IsAdmin reports whether the authenticated user carries the admin capability.
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == RoleAdmin
}

func getString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
