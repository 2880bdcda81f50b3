package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/moha528/quickpress-back/internal/domains/user"
	"github.com/moha528/quickpress-back/internal/shared/response"
	"github.com/moha528/quickpress-back/pkg/jwt"
)

const currentUserKey = "currentUser"

// Auth verifies the bearer token and reloads the subject from the store so
// that deleted users are locked out even while their token is unexpired.
func Auth(tokens *jwt.Manager, users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := jwt.ExtractBearer(c.GetHeader("Authorization"))
		if err != nil {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "user no longer exists")
			c.Abort()
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by Auth.
func CurrentUser(c *gin.Context) (*user.DTO, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.DTO)
	return u, ok
}
