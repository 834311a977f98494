package dto

import (
	"github.com/ebanking/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddTransactionRequest defines the payload to submit a transaction for ingestion.
type AddTransactionRequest struct {
	AccountIBAN string          `json:"accountIban" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	ValueDate   Date            `json:"valueDate" binding:"required"`
	Description string          `json:"description" binding:"required,max=255"`
}

// AddTransactionResponse acknowledges a transaction accepted for ingestion.
type AddTransactionResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

// TransactionMessage is the queue payload for the asynchronous ingestion path.
// The consumer always stamps the owning account's currency on the persisted
// transaction, so the message itself carries none.
type TransactionMessage struct {
	TransactionID string          `json:"transactionId"`
	AccountIBAN   string          `json:"accountIban"`
	Amount        decimal.Decimal `json:"amount"`
	ValueDate     Date            `json:"valueDate"`
	Description   string          `json:"description"`
}

// ListTransactionsParams defines query parameters for the transaction listing.
type ListTransactionsParams struct {
	Year         int    `form:"year" binding:"required,min=1970"`
	Month        int    `form:"month" binding:"required,min=1,max=12"`
	BaseCurrency string `form:"baseCurrency"`
	Page         int    `form:"page,default=0"`
	Size         int    `form:"size,default=20"`
}

// TransactionResponse is the API representation of a single transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionId"`
	AccountIBAN   string          `json:"accountIban"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	ValueDate     Date            `json:"valueDate"`
	Description   string          `json:"description"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountIBAN:   t.AccountIBAN,
		Amount:        t.Amount,
		CurrencyCode:  t.CurrencyCode,
		ValueDate:     NewDate(t.ValueDate),
		Description:   t.Description,
	}
}

// ListTransactionsResponse carries one page of transactions plus credit/debit
// totals normalized into the requested base currency.
type ListTransactionsResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	TotalCredit   decimal.Decimal       `json:"totalCredit"`
	TotalDebit    decimal.Decimal       `json:"totalDebit"`
	BaseCurrency  string                `json:"baseCurrency"`
	Page          int                   `json:"page"`
	Size          int                   `json:"size"`
	TotalPages    int                   `json:"totalPages"`
	TotalElements int                   `json:"totalElements"`
	First         bool                  `json:"first"`
	Last          bool                  `json:"last"`
}
