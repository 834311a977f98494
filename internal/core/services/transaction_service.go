package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ebanking/portal_backend/internal/apperrors"
	"github.com/ebanking/portal_backend/internal/core/domain"
	"github.com/ebanking/portal_backend/internal/core/ports/gateways"
	portsrepo "github.com/ebanking/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService provides business logic for transactions: submission to
// the ingestion queue, persistence of consumed messages, and listing with
// currency-normalized totals.
type TransactionService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	converter   portssvc.ConverterSvcFacade
	publisher   gateways.TransactionPublisher
	logger      *slog.Logger
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	converter portssvc.ConverterSvcFacade,
	publisher gateways.TransactionPublisher,
	logger *slog.Logger,
) *TransactionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		converter:   converter,
		publisher:   publisher,
		logger:      logger,
	}
}

// SubmitTransaction validates the request against the customer's account and
// publishes it to the ingestion queue. The transaction is persisted later by
// the queue consumer.
func (s *TransactionService) SubmitTransaction(ctx context.Context, req dto.AddTransactionRequest, customerID string) (string, error) {
	account, err := s.accountRepo.FindAccountByIBAN(ctx, req.AccountIBAN)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: account '%s'", apperrors.ErrNotFound, req.AccountIBAN)
		}
		return "", fmt.Errorf("failed to resolve account for submission: %w", err)
	}
	if account.CustomerID != customerID {
		return "", fmt.Errorf("%w: account '%s'", apperrors.ErrNotFound, req.AccountIBAN)
	}
	if req.Amount.IsZero() {
		return "", fmt.Errorf("%w: amount must be non-zero", apperrors.ErrValidation)
	}

	msg := dto.TransactionMessage{
		TransactionID: uuid.NewString(),
		AccountIBAN:   req.AccountIBAN,
		Amount:        req.Amount,
		ValueDate:     req.ValueDate,
		Description:   req.Description,
	}
	if err := s.publisher.PublishTransaction(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to publish transaction: %w", err)
	}

	s.logger.Info("transaction submitted for ingestion",
		slog.String("transaction_id", msg.TransactionID),
		slog.String("account_iban", msg.AccountIBAN))
	return msg.TransactionID, nil
}

// IngestTransaction persists a transaction read back from the queue. The
// account's currency is always stamped on the stored row, whatever the
// producer sent.
func (s *TransactionService) IngestTransaction(ctx context.Context, msg dto.TransactionMessage) error {
	account, err := s.accountRepo.FindAccountByIBAN(ctx, msg.AccountIBAN)
	if err != nil {
		return fmt.Errorf("failed to resolve account '%s' for ingestion: %w", msg.AccountIBAN, err)
	}

	txnID := msg.TransactionID
	if txnID == "" {
		txnID = uuid.NewString()
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: txnID,
		AccountIBAN:   account.IBAN,
		Amount:        msg.Amount,
		CurrencyCode:  account.CurrencyCode,
		ValueDate:     msg.ValueDate.Time,
		Description:   msg.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return fmt.Errorf("failed to persist ingested transaction: %w", err)
	}
	return nil
}

// ListTransactions returns one month of the customer's transactions with
// credit/debit totals converted into the requested base currency. Conversion
// is best-effort per transaction; a stale or missing rate never fails the
// listing.
func (s *TransactionService) ListTransactions(ctx context.Context, customerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if params.Size <= 0 {
		params.Size = 20
	}
	if params.Page < 0 {
		params.Page = 0
	}

	start := time.Date(params.Year, time.Month(params.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	txns, total, err := s.txnRepo.FindTransactionsByCustomerAndDateRange(
		ctx, customerID, start, end, params.Size, params.Page*params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}

	totalCredit := decimal.Zero
	totalDebit := decimal.Zero
	responses := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		txn := txns[i]
		converted := s.converter.Convert(ctx, &txn.Amount, txn.CurrencyCode, params.BaseCurrency, txn.ValueDate)
		if txn.IsCredit() {
			totalCredit = totalCredit.Add(converted)
		} else {
			totalDebit = totalDebit.Add(converted.Abs())
		}
		responses[i] = dto.ToTransactionResponse(&txn)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + params.Size - 1) / params.Size
	}

	return &dto.ListTransactionsResponse{
		Transactions:  responses,
		TotalCredit:   totalCredit,
		TotalDebit:    totalDebit,
		BaseCurrency:  params.BaseCurrency,
		Page:          params.Page,
		Size:          params.Size,
		TotalPages:    totalPages,
		TotalElements: total,
		First:         params.Page == 0,
		Last:          params.Page >= totalPages-1,
	}, nil
}
