package services

import (
	"context"
	"time"

	"github.com/ebanking/portal_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for issuing and validating identity tokens.
type TokenSvcFacade interface {
	// GenerateToken issues a signed token for the customer with the configured
	// TTL and returns it together with its expiry time.
	GenerateToken(ctx context.Context, customerID string) (string, time.Time, error)

	// ValidateToken verifies signature and structure, then reports whether the
	// token's subject matches the principal and the token is not yet expired.
	// Expired tokens return apperrors.ErrTokenExpired; malformed tokens or bad
	// signatures return apperrors.ErrTokenInvalid.
	ValidateToken(token string, principal domain.Principal) (bool, error)

	// ExtractSubject decodes and verifies the token and returns its subject.
	// Verification failures propagate to the caller.
	ExtractSubject(token string) (string, error)
}
