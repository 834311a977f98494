package services

import (
	"context"

	"github.com/ebanking/portal_backend/internal/core/domain"
	"github.com/ebanking/portal_backend/internal/dto"
)

// CustomerSvcFacade defines the interface for customer management services.
type CustomerSvcFacade interface {
	PrincipalResolver

	// RegisterCustomer creates a new customer with a hashed password.
	RegisterCustomer(ctx context.Context, req dto.RegisterRequest) (*domain.Customer, error)

	// GetCustomerByID retrieves a customer by their ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// VerifyCredentials checks a customer ID / password pair and returns the
	// customer on success. Unknown customer and wrong password both map to
	// apperrors.ErrUnauthorized so callers cannot tell the cases apart.
	VerifyCredentials(ctx context.Context, customerID, password string) (*domain.Customer, error)
}

// PrincipalResolver resolves a decoded token subject to an authenticatable
// principal. It is the narrow collaborator the authentication filter needs.
type PrincipalResolver interface {
	// ResolvePrincipal returns the principal for a customer ID, or
	// apperrors.ErrNotFound when the customer does not exist.
	ResolvePrincipal(ctx context.Context, customerID string) (*domain.Principal, error)
}
