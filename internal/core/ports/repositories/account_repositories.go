package repositories

import (
	"context"

	"github.com/ebanking/portal_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByIBAN retrieves a specific account by its IBAN.
	FindAccountByIBAN(ctx context.Context, iban string) (*domain.Account, error)

	// FindAccountsByCustomerID retrieves all accounts belonging to a customer.
	FindAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
