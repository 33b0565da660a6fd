package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

// UserKey is the gin context key under which the authenticated local user is
// stored for downstream handlers.
const UserKey = "user"

type TokenValidator interface {
	Validate(ctx context.Context, token string) (*domain.Identity, error)
}

type UserMirror interface {
	Mirror(ctx context.Context, identity domain.Identity) (*domain.User, error)
}

// Auth validates the bearer token against the external auth service and
// mirrors the identity into the local user store, attaching the resulting
// user to the request context. Requests without a valid token get 401.
func Auth(validator TokenValidator, users UserMirror, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, "no token provided")
			return
		}

		identity, err := validator.Validate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "token validation failed",
					logger.String("error", err.Error()),
				)
			}
			abortUnauthorized(c, "invalid token")
			return
		}

		user, err := users.Mirror(c.Request.Context(), *identity)
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "mirroring user failed",
				logger.String("username", identity.Username),
				logger.String("error", err.Error()),
			)
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func abortUnauthorized(c *ginext.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		ginext.H{"statusCode": http.StatusUnauthorized, "message": message},
	)
}

// CurrentUser retrieves the user attached by Auth.
func CurrentUser(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
