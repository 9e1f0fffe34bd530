package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/config"
	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/service"
	"orbit-hrms/backend/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	cfg     *config.Config
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(cfg *config.Config, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc}
}

// Login authenticates by email and password.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, token, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.Auth.SessionTTL.Seconds()))
	response.OK(c, user)
}

// Me returns the session user's own record.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// Logout revokes the session token and clears the cookie.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, exp := sessionToken(c)
	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.Error(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	h.setSessionCookie(c, "", -1)
	response.Success(c)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	cookie := h.cfg.Auth.Cookie
	switch cookie.SameSite {
	case "Strict":
		c.SetSameSite(http.SameSiteStrictMode)
	case "None":
		c.SetSameSite(http.SameSiteNoneMode)
	default:
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(cookie.Name, token, maxAge, "/", cookie.Domain, cookie.Secure, true)
}
