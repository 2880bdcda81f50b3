package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moha528/quickpress-back/internal/domains/user"
	"github.com/moha528/quickpress-back/internal/shared/response"
)

// RequireRoles gates a route to the given roles. It must run after Auth;
// the 403 body enumerates the allowed roles.
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	allowed := make([]string, len(roles))
	for i, r := range roles {
		allowed[i] = string(r)
	}
	message := "access denied, allowed roles: " + strings.Join(allowed, ", ")

	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		for _, r := range roles {
			if user.Role(u.Role) == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, message)
		c.Abort()
	}
}

// RequireAdmin gates a route to ADMIN.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(user.RoleAdmin)
}

// RequireEditor gates a route to ADMIN or EDITOR.
func RequireEditor() gin.HandlerFunc {
	return RequireRoles(user.RoleAdmin, user.RoleEditor)
}

// RequireVisitor gates a route to any authenticated user.
func RequireVisitor() gin.HandlerFunc {
	return RequireRoles(user.RoleAdmin, user.RoleEditor, user.RoleVisitor)
}
