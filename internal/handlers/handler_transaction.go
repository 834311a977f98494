package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ebanking/portal_backend/internal/apperrors"
	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/dto"
	"github.com/ebanking/portal_backend/internal/middleware"
	"github.com/ebanking/portal_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService  portssvc.TransactionSvcFacade
	defaultBaseCurrency string
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, defaultBaseCurrency string) *transactionHandler {
	return &transactionHandler{
		transactionService:  ts,
		defaultBaseCurrency: defaultBaseCurrency,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, defaultBaseCurrency string) {
	h := newTransactionHandler(ts, defaultBaseCurrency)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.submitTransaction)
		transactions.GET("", h.listTransactions)
	}
}

// submitTransaction accepts a transaction and queues it for ingestion.
// Persistence is asynchronous, so the handler answers 202 Accepted.
func (h *transactionHandler) submitTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for submitTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txnID, err := h.transactionService.SubmitTransaction(c.Request.Context(), req, principal.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to submit transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit transaction"})
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.AddTransactionResponse{
		TransactionID: txnID,
		Status:        "ACCEPTED",
	})
}

// listTransactions returns one month of the authenticated customer's
// transactions with totals converted into the requested base currency.
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if params.BaseCurrency == "" {
		params.BaseCurrency = h.defaultBaseCurrency
	}
	params.BaseCurrency = utils.NormalizeCurrencyCode(params.BaseCurrency)
	if !utils.IsValidCurrencyCode(params.BaseCurrency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "baseCurrency must be a 3-letter ISO code"})
		return
	}

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), principal.CustomerID, params)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
