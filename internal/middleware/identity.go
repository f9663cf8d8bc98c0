package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDHeader   = "X-User-Id"
	UserRoleHeader = "X-User-Role"

	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

// Identity trusts the gateway-set identity headers. Requests without a valid
// user id and role are rejected before reaching any handler.
func Identity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		userID := c.GetHeader(UserIDHeader)
		if _, err := uuid.Parse(userID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or malformed " + UserIDHeader + " header"},
			)
			return
		}

		role, ok := domain.ParseRole(c.GetHeader(UserRoleHeader))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or unknown " + UserRoleHeader + " header"},
			)
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserRoleKey, string(role))

		c.Next()
	}
}

// RequireTutor guards tutor-only routes. Admins pass through.
func RequireTutor() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		role, _ := domain.ParseRole(c.GetString(UserRoleKey))
		if !role.CanTutor() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "tutor role required"},
			)
			return
		}

		c.Next()
	}
}
