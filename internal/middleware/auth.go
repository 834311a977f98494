package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ebanking/portal_backend/internal/apperrors"
	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthenticationFilter creates a Gin middleware that attaches a Principal to
// the request context when a valid bearer token is presented. It never aborts
// the request: missing, malformed, expired or unknown-subject tokens all leave
// the request unauthenticated and let the chain continue, so one filter can
// serve public and protected routes alike. RequireAuthenticated is the
// fail-closed counterpart applied to protected groups.
func AuthenticationFilter(tokenSvc portssvc.TokenSvcFacade, resolver portssvc.PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		// Whatever goes wrong in here, the request keeps flowing. The
		// authorization check downstream is the one that rejects.
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("authentication filter recovered", slog.Any("panic", r))
				}
			}()

			token := bearerToken(c)
			if token == "" {
				return
			}
			if _, exists := GetPrincipalFromContext(c); exists {
				return
			}

			subject, err := tokenSvc.ExtractSubject(token)
			if err != nil {
				logTokenFailure(logger, err)
				return
			}
			if subject == "" {
				logger.Warn("token subject empty")
				return
			}

			principal, err := resolver.ResolvePrincipal(c.Request.Context(), subject)
			if err != nil {
				// Unknown subject logs like any other invalid token; the
				// response shape downstream stays identical in either case.
				logger.Warn("token subject could not be resolved", slog.String("error", err.Error()))
				return
			}

			valid, err := tokenSvc.ValidateToken(token, *principal)
			if err != nil {
				logTokenFailure(logger, err)
				return
			}
			if !valid {
				logger.Warn("token validation failed", slog.String("subject", subject))
				return
			}

			ctx := withPrincipal(c.Request.Context(), *principal)
			enrichedLogger := logger.With(slog.String("customer_id", principal.CustomerID))
			c.Request = c.Request.WithContext(withLogger(ctx, enrichedLogger))
		}()

		c.Next()
	}
}

// RequireAuthenticated aborts with a uniform 401 when no Principal was
// attached by the authentication filter.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipalFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Absence of the header or the prefix yields an empty string.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func logTokenFailure(logger *slog.Logger, err error) {
	if errors.Is(err, apperrors.ErrTokenExpired) {
		logger.Warn("token expired", slog.String("error", err.Error()))
		return
	}
	logger.Warn("token invalid", slog.String("error", err.Error()))
}
