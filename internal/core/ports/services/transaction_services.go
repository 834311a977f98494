package services

import (
	"context"

	"github.com/ebanking/portal_backend/internal/dto"
)

// TransactionSvcFacade defines the interface for transaction services.
type TransactionSvcFacade interface {
	// SubmitTransaction validates the request against the customer's account
	// and publishes it to the ingestion queue. Returns the assigned
	// transaction ID; persistence happens asynchronously.
	SubmitTransaction(ctx context.Context, req dto.AddTransactionRequest, customerID string) (string, error)

	// ListTransactions returns one month of the customer's transactions with
	// credit/debit totals converted into the requested base currency.
	ListTransactions(ctx context.Context, customerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// IngestTransaction persists a transaction read back from the queue,
	// stamping the owning account's currency. Unknown accounts are an error;
	// the consumer logs and skips those messages.
	IngestTransaction(ctx context.Context, msg dto.TransactionMessage) error
}
