package repositories

import (
	"context"
	"time"

	"github.com/ebanking/portal_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionsByCustomerAndDateRange retrieves a page of a customer's
	// transactions whose value date lies in [from, to], newest first, together
	// with the total number of matching rows.
	FindTransactionsByCustomerAndDateRange(ctx context.Context, customerID string, from, to time.Time, limit, offset int) ([]domain.Transaction, int, error)

	// FindTransactionsByAccountIBAN retrieves all transactions for an account, newest first.
	FindTransactionsByAccountIBAN(ctx context.Context, iban string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a transaction. Saving an existing transaction ID
	// is an upsert so the Kafka consumer can redeliver safely.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
