package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tmori/task-manager-api/internal/constants"
	apierrors "github.com/tmori/task-manager-api/internal/errors"
	"github.com/tmori/task-manager-api/internal/models"
	"github.com/tmori/task-manager-api/internal/services"
)

const bearerPrefix = "Bearer "

// RequireAuth validates the Authorization header against the token service.
// A missing header, a non-Bearer scheme, or an unresolvable token aborts the
// request with 401 before the handler runs. On success the resolved user is
// stored in the request context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		plaintext := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		user, err := tokens.Resolve(plaintext)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}

// GetUser retrieves the current user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}
