package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/room-booking-backend/internal/auth"
)

// RequireAdmin ensures the authenticated user carries the admin capability.
// The role comes from the validated token claims; the booking core trusts
// this input rather than performing its own authentication.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !auth.IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
