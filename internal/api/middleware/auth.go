package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
	"orbit-hrms/backend/pkg/jwt"
	"orbit-hrms/backend/pkg/redis"
	"orbit-hrms/backend/pkg/response"
)

// Context keys injected by Auth.
const (
	CtxUserID   = "user_id"
	CtxUserRole = "role"
	CtxTokenID  = "token_jti"
	CtxTokenExp = "token_exp"
)

// Auth resolves the session identity for a request. The token comes from
// the session cookie or an Authorization: Bearer header. After signature
// and blacklist checks the user record is re-read from the database, so a
// role change applies immediately and a deleted user's live token stops
// working. Identity travels in the request-scoped gin context only.
func Auth(jwtMgr *jwt.Manager, rdb *redis.Client, users repository.UserRepository, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, "Not authenticated")
				c.Abort()
				return
			}
			// A blacklist read error fails open: the signed token is
			// still within its lifetime.
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Unauthorized(c, "Not authenticated")
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxUserRole, user.Role)
		c.Set(CtxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireRole gates a route to an explicit set of roles. Every protected
// route declares its allow-list at registration, so the full capability
// matrix is readable from the router alone.
func RequireRole(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(CtxUserRole)
		if !exists {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		role, ok := v.(model.Role)
		if !ok {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient permissions")
		c.Abort()
	}
}
