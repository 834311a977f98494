package handlers

import (
	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/middleware"
	"github.com/ebanking/portal_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register public authentication routes
	registerAuthRoutes(r, services.Customer, services.Token)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// The filter authenticates when a valid bearer token is present but
	// never rejects; RequireAuthenticated enforces the 401.
	v1 := r.Group("/api/v1",
		middleware.AuthenticationFilter(services.Token, services.Customer),
		middleware.RequireAuthenticated(),
	)

	// Delegate route registration to specific handlers, passing required services
	registerCustomerRoutes(v1, services.Customer)
	registerAccountRoutes(v1, services.Account)
	registerTransactionRoutes(v1, services.Transaction, cfg.BaseCurrency)
	registerAdminRoutes(v1, services.Converter)
}
