package services

import (
	"context"

	"github.com/ebanking/portal_backend/internal/core/domain"
	"github.com/ebanking/portal_backend/internal/dto"
)

// AccountSvcFacade defines the interface for account management services.
type AccountSvcFacade interface {
	// CreateAccount opens a new account for the given customer.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, customerID string) (*domain.Account, error)

	// GetAccount retrieves an account by IBAN, scoped to the owning customer.
	// Accounts of other customers surface as apperrors.ErrNotFound.
	GetAccount(ctx context.Context, iban string, customerID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts belonging to the customer.
	ListAccounts(ctx context.Context, customerID string) ([]domain.Account, error)
}
