package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ebanking/portal_backend/internal/apperrors"
	"github.com/ebanking/portal_backend/internal/core/domain"
	portsrepo "github.com/ebanking/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/dto"
	"github.com/ebanking/portal_backend/internal/utils"
)

// AccountService provides business logic for customer accounts.
type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccount opens a new account for the given customer.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, customerID string) (*domain.Account, error) {
	currency := utils.NormalizeCurrencyCode(req.CurrencyCode)
	if !utils.IsValidCurrencyCode(currency) {
		return nil, fmt.Errorf("%w: currency code must be a 3-letter ISO code", apperrors.ErrValidation)
	}

	existing, err := s.accountRepo.FindAccountByIBAN(ctx, req.IBAN)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account '%s'", apperrors.ErrDuplicate, req.IBAN)
	}

	now := time.Now()
	account := domain.Account{
		IBAN:         req.IBAN,
		CurrencyCode: currency,
		CustomerID:   customerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account in service: %w", err)
	}
	return &account, nil
}

// GetAccount retrieves an account by IBAN scoped to the owning customer.
// Another customer's account surfaces as ErrNotFound rather than a
// forbidden error, so the response shape leaks nothing about foreign IBANs.
func (s *AccountService) GetAccount(ctx context.Context, iban string, customerID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByIBAN(ctx, iban)
	if err != nil {
		return nil, fmt.Errorf("failed to get account in service: %w", err)
	}
	if account.CustomerID != customerID {
		return nil, fmt.Errorf("%w: account '%s'", apperrors.ErrNotFound, iban)
	}
	return account, nil
}

// ListAccounts retrieves all accounts belonging to the customer.
func (s *AccountService) ListAccounts(ctx context.Context, customerID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts in service: %w", err)
	}
	return accounts, nil
}
