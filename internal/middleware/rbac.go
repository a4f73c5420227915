package middleware

import (
	"net/http"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/response"
	"github.com/gin-gonic/gin"
)

// RequireRole checks that the authenticated user holds at least the given
// role. Must run after RequireSession. Roles are totally ordered
// (viewer < editor < admin), so an admin passes every gate.
func RequireRole(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
			return
		}

		if !user.Role.AtLeast(min) {
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}

		c.Next()
	}
}
