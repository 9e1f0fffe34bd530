package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/internal/api/middleware"
	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/pkg/response"
)

// MustGetUserID extracts the session user id. On a missing or malformed
// value it writes a 401 and returns ok=false; the caller should return
// immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "Not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the session user's role.
func MustGetRole(c *gin.Context) (model.Role, bool) {
	v, exists := c.Get(middleware.CtxUserRole)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return "", false
	}
	r, ok := v.(model.Role)
	if !ok || !r.Valid() {
		response.Unauthorized(c, "Not authenticated")
		return "", false
	}
	return r, true
}

// sessionToken returns the token id and expiry stashed by the Auth
// middleware, used for revocation on logout.
func sessionToken(c *gin.Context) (jti string, exp time.Time) {
	if v, ok := c.Get(middleware.CtxTokenID); ok {
		jti, _ = v.(string)
	}
	if v, ok := c.Get(middleware.CtxTokenExp); ok {
		exp, _ = v.(time.Time)
	}
	return jti, exp
}
