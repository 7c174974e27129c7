package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kellum/api/internal/models"
	"kellum/api/internal/service"
)

// SessionTokenHeader carries the opaque session id on every request to
// a gated route.
const SessionTokenHeader = "X-Session-Token"

const currentUserKey = "current_user"

// SessionValidator resolves a session token to its owner or fails.
type SessionValidator interface {
	Validate(ctx context.Context, sessionID string) (models.AuthenticatedUser, error)
}

// Auth gates mutating routes on a live session. No token at all is a
// plain forbidden, with no store round trip; a token that does not
// denote a live session is rejected identically whether it is unknown
// or expired. On success the resolved user rides the request context so
// handlers never validate twice.
func Auth(auth SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionTokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": service.ErrGenerallyForbidden.Error()})
			return
		}

		user, err := auth.Validate(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			if !errors.Is(err, service.ErrInvalidSessionToken) {
				status = http.StatusPreconditionFailed
			}
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by Auth.
func CurrentUser(c *gin.Context) (models.AuthenticatedUser, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return models.AuthenticatedUser{}, false
	}
	user, ok := val.(models.AuthenticatedUser)
	return user, ok
}
