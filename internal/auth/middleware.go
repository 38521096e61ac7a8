package auth

import (
	"strings"

	"github.com/aurafashions/server/aura/users"
	"github.com/aurafashions/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const contextUserKey = "current_user"

// validates the bearer session credential and attaches the resolved user to
// the request context
func Middleware(validator *Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			errors.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		user, err := validator.ResolveUser(c.Request.Context(), parts[1])
		if err != nil {
			errors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// requires the admin role; must run after Middleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			errors.Forbidden(c, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// extracts the authenticated user from context after Middleware
func CurrentUser(c *gin.Context) (*users.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users.User)
	return user, ok
}
