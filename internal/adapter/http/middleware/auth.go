package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	"todoapi/pkg/auth"
)

const userContextKey = "currentUser"

// AuthMiddleware resolves the bearer token to a verified account.
type AuthMiddleware struct {
	tokens *auth.JWT
	users  port.UserRepository
	logger zerolog.Logger
}

func NewAuthMiddleware(tokens *auth.JWT, users port.UserRepository, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
		logger: logger,
	}
}

// RequireAuth gates authenticated routes. Verification failure and missing or
// unverified users collapse into the same 401 response.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if token == "" {
			helper.SendError(c, http.StatusUnauthorized, "Token not provided")
			return
		}

		user, err := m.resolveUser(c, token)

		if err != nil {
			helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireGuest gates anonymous-only routes. A token that resolves to an
// active account is rejected; a garbage or stale token passes through as if
// absent.
func (m *AuthMiddleware) RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if token == "" {
			c.Next()
			return
		}

		if _, err := m.resolveUser(c, token); err != nil {
			c.Next()
			return
		}

		helper.SendError(c, http.StatusConflict, "User is already logged in")
	}
}

func (m *AuthMiddleware) resolveUser(c *gin.Context, token string) (domain.User, error) {
	subject, err := m.tokens.VerifyToken(token)

	if err != nil {
		m.logger.Debug().Err(err).Msg("token verification failed")
		return domain.User{}, err
	}

	return m.users.GetActiveByUUID(c.Request.Context(), subject)
}

// CurrentUser returns the account attached by RequireAuth.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userContextKey)

	if !exists {
		return domain.User{}, false
	}

	user, ok := value.(domain.User)

	return user, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)

	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}

	return strings.TrimSpace(header)
}
