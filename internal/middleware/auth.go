package middleware

import (
	"errors"
	"net/http"
	"strings"

	"job-board-backend/internal/models"
	"job-board-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// IdentityResolver validates a bearer token and resolves its user.
type IdentityResolver interface {
	ResolveIdentity(bearerToken string) (*models.User, error)
}

// ContextUserKey is where the auth middleware stores the resolved user.
const ContextUserKey = "currentUser"

// ExtractBearerToken pulls the raw token out of the Authorization header
// without validating it.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("Invalid authorization format. Use: Bearer <token>")
	}

	return parts[1], nil
}

// AuthMiddleware validates the bearer token and injects the resolved user
// into the request context
func AuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearerToken(c)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		user, err := resolver.ResolveIdentity(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)

		c.Next()
	}
}

// CurrentUser returns the user the auth middleware resolved for this request
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
