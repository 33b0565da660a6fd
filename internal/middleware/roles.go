package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

// RequireOrganizer rejects requests whose authenticated user does not carry
// the organizer role. Must run after Auth.
func RequireOrganizer() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"statusCode": http.StatusUnauthorized, "message": "user not authenticated"},
			)
			return
		}

		if user.Role != domain.RoleOrganizer {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"statusCode": http.StatusForbidden, "message": "access denied, organizers only"},
			)
			return
		}

		c.Next()
	}
}
