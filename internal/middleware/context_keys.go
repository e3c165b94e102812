package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authority level carried by the token.
// Tokens without a role claim act as employee.
func GetUserRoleFromContext(c *gin.Context) domain.AuthorityLevel {
	role, ok := c.Request.Context().Value(userRoleKey).(domain.AuthorityLevel)
	if !ok || role == "" {
		return domain.AuthorityEmployee
	}
	return role
}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, userID string, role domain.AuthorityLevel) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}
