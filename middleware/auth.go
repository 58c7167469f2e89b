package middleware

import (
	"net/http"
	"strings"

	"hotel-booking-api/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthRequired and consumed by handlers.
const (
	ContextUserID  = "user_id"
	ContextIsStaff = "is_staff"
)

// AuthRequired validates a Bearer access token and stores the caller's id
// and staff flag in the gin context. The secret must match the one used
// when issuing tokens.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		claims, err := utils.ParseAccessToken(secret, raw)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsStaff, claims.IsStaff)
		c.Next()
	}
}

// StaffOnly rejects callers without the staff flag. Assumes AuthRequired ran
// earlier in the chain.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsStaff) {
			utils.JSONError(c, http.StatusForbidden, "staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user's id, 0 when unauthenticated.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// IsStaff reports whether the authenticated caller has the staff flag.
func IsStaff(c *gin.Context) bool {
	return c.GetBool(ContextIsStaff)
}
