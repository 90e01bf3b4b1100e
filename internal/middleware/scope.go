package middleware

import (
	"github.com/gin-gonic/gin"

	"tasklens/internal/model"
)

const (
	// UserIDHeader carries the extension install's identity. Keys are BYOK,
	// so this is partitioning, not authentication.
	UserIDHeader = "X-User-ID"

	// DefaultUserID is assigned to headerless callers, e.g. a single-user
	// local deployment.
	DefaultUserID = "default"

	scopeContextKey = "tasklens.scope"
)

// Scope resolves the caller's scope from the request and stashes it in the
// gin context for handlers.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			userID = DefaultUserID
		}
		c.Set(scopeContextKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope resolved by the Scope middleware.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeContextKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: DefaultUserID}
}
