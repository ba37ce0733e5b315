package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SJ-Slasher/FMS/internal/api"
)

const (
	ctxStaffID = "staff_id"
	ctxEmail   = "staff_email"
	ctxRole    = "staff_role"
)

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, api.ErrorResponse{Error: msg})
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abort(c, http.StatusUnauthorized, "Token is empty")
			return
		}

		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				abort(c, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, ErrInvalidTokenType):
				abort(c, http.StatusUnauthorized, "Access token required")
			default:
				abort(c, http.StatusUnauthorized, "Invalid or malformed token")
			}
			return
		}

		c.Set(ctxStaffID, claims.StaffID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			abort(c, http.StatusUnauthorized, "Staff role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok {
			abort(c, http.StatusUnauthorized, "Invalid role type")
			return
		}

		for _, r := range roles {
			if roleStr == r {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "Insufficient permissions")
	}
}

func GetStaffID(c *gin.Context) (int, bool) {
	v, exists := c.Get(ctxStaffID)
	if !exists {
		return 0, false
	}

	id, ok := v.(int)
	return id, ok
}
