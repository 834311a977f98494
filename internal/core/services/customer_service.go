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

// CustomerService provides business logic for customers and doubles as the
// principal resolution collaborator for the authentication filter.
type CustomerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

var (
	_ portssvc.CustomerSvcFacade = (*CustomerService)(nil)
	_ portssvc.PrincipalResolver = (*CustomerService)(nil)
)

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// RegisterCustomer creates a new customer with a bcrypt-hashed password.
func (s *CustomerService) RegisterCustomer(ctx context.Context, req dto.RegisterRequest) (*domain.Customer, error) {
	existing, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing customer: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: customer '%s'", apperrors.ErrDuplicate, req.CustomerID)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:   req.CustomerID,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer in service: %w", err)
	}
	return &customer, nil
}

// GetCustomerByID retrieves a customer by their ID.
func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer in service: %w", err)
	}
	return customer, nil
}

// VerifyCredentials checks a customer ID / password pair. Unknown customer
// and wrong password collapse to the same ErrUnauthorized so callers cannot
// tell which failed.
func (s *CustomerService) VerifyCredentials(ctx context.Context, customerID, password string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}
	if !utils.CheckPasswordHash(password, customer.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return customer, nil
}

// ResolvePrincipal maps a decoded token subject to an authenticatable
// principal with the fixed customer role.
func (s *CustomerService) ResolvePrincipal(ctx context.Context, customerID string) (*domain.Principal, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	principal := domain.NewCustomerPrincipal(customerID)
	return &principal, nil
}
