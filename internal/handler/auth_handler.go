package handler

import (
	"errors"
	"net/http"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/atharvgarg18/iet-csbs-backend/internal/middleware"
	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/response"
	"github.com/atharvgarg18/iet-csbs-backend/internal/service"
	"github.com/atharvgarg18/iet-csbs-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// setSessionCookie writes the session cookie: HttpOnly, SameSite=Strict,
// Path=/, Max-Age equal to the session TTL.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(config.SessionCookieName, token, maxAge, "/", "", h.authService.CookieSecure(), true)
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password, mints a session token, and sets the cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, session, err := h.authService.Login(
		c.Request.Context(),
		req.Email, req.Password,
		c.ClientIP(), c.Request.UserAgent(),
	)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.setSessionCookie(c, session.Token, h.authService.CookieMaxAge())

	response.Success(c, http.StatusOK, gin.H{"user": user.Profile()})
}

// Check godoc
// GET /api/v1/auth/check
// Returns the profile of the session's owner. The session middleware already
// rejected missing, expired, and deactivated-user tokens with 401.
func (h *AuthHandler) Check(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user.Profile()})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the profile plus the navigation sections the role may see.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":       user.Profile(),
		"navigation": model.NavSectionsFor(user.Role),
	})
}

// Logout godoc
// POST /api/v1/auth/logout
// Revokes the session if the cookie carries one, always clears the cookie,
// and always returns success. Calling it twice is harmless.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(config.SessionCookieName); err == nil {
		h.authService.Logout(c.Request.Context(), token)
	}

	h.setSessionCookie(c, "", -1)

	response.Success(c, http.StatusOK, gin.H{})
}
