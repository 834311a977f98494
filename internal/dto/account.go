package dto

import (
	"github.com/ebanking/portal_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open an account.
type CreateAccountRequest struct {
	IBAN         string `json:"iban" binding:"required,min=15,max=34"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	IBAN         string `json:"iban"`
	CurrencyCode string `json:"currencyCode"`
	CustomerID   string `json:"customerId"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		IBAN:         a.IBAN,
		CurrencyCode: a.CurrencyCode,
		CustomerID:   a.CustomerID,
	}
}

// ListAccountsResponse wraps the list of a customer's accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to its response DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: out}
}
