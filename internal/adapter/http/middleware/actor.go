package middleware

import (
	"net/http"
	"strings"

	"fleetval/internal/domain/entities"
	"fleetval/pkg"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// ActorContext resolves the caller identity from the X-User-ID and
// X-User-Role headers. Authentication itself is terminated upstream; this
// service only needs "a user or an admin".
func ActorContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-User-ID"))
		role := strings.ToLower(strings.TrimSpace(c.GetHeader("X-User-Role")))
		c.Set(actorContextKey, entities.Actor{ID: id, Admin: role == "admin"})
		c.Next()
	}
}

// GetActor returns the actor placed by ActorContext.
func GetActor(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{}
}

// RequireUser aborts requests with no caller identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetActor(c).ID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Caller identity required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RequireAdmin guards admin-only routes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor.ID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Caller identity required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !actor.Admin {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
