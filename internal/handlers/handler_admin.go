package handlers

import (
	"net/http"

	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler exposes operational endpoints.
type adminHandler struct {
	converterService portssvc.ConverterSvcFacade
}

func newAdminHandler(cs portssvc.ConverterSvcFacade) *adminHandler {
	return &adminHandler{converterService: cs}
}

// registerAdminRoutes registers operational routes.
func registerAdminRoutes(rg *gin.RouterGroup, cs portssvc.ConverterSvcFacade) {
	h := newAdminHandler(cs)

	admin := rg.Group("/admin")
	{
		admin.DELETE("/rates/cache", h.clearRateCache)
	}
}

// clearRateCache drops every cached exchange rate so the next conversion
// fetches fresh values from the upstream provider.
func (h *adminHandler) clearRateCache(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	h.converterService.ClearCache()
	logger.Info("Exchange rate cache cleared")

	c.JSON(http.StatusOK, gin.H{"message": "Exchange rate cache cleared"})
}
