package middleware

import (
	"log"
	"net/http"
	"strings"

	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"
	"meshguard_api/pkg"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// RequireAuth verifies the Bearer token and stores the caller for handlers.
func RequireAuth(tokens interfaces.ITokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		actor, err := tokens.Parse(raw)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if actor.Role != role {
			log.Printf("[auth][middleware] role denied user_id=%s role=%s want=%s", actor.UserID, actor.Role, role)
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ActorFrom returns the caller stored by RequireAuth.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// SetActor is used by tests that mount handlers without the token middleware.
func SetActor(actor entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
