package middleware

import (
	"net/http"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/response"
	"github.com/atharvgarg18/iet-csbs-backend/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyUser is the Gin context key for the authenticated user.
	ContextKeyUser = "current_user"

	// ContextKeyToken is the Gin context key for the raw session token.
	ContextKeyToken = "session_token"
)

// RequireSession validates the session cookie against the session store and
// injects the authenticated user into the context. This is the single
// server-side authority on session validity; any client-side guard is
// presentation only.
func RequireSession(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(config.SessionCookieName)
		if err != nil || token == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			return
		}

		user, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyToken, token)
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from the Gin context.
// Returns nil when RequireSession did not run.
func GetCurrentUser(c *gin.Context) *model.User {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// GetSessionToken retrieves the raw session token from the Gin context.
func GetSessionToken(c *gin.Context) string {
	val, exists := c.Get(ContextKeyToken)
	if !exists {
		return ""
	}
	token, _ := val.(string)
	return token
}
