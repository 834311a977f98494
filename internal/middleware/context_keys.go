package middleware

import (
	"context"

	"github.com/ebanking/portal_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// principalKey is the key used to store the authenticated Principal in the
// request context. Using a custom type prevents collisions.
const principalKey = contextKey("principal")

// withPrincipal attaches the principal to the standard request context.
func withPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipalFromContext retrieves the authenticated Principal from the Gin
// context. It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	principal, ok := c.Request.Context().Value(principalKey).(domain.Principal)
	return principal, ok
}
