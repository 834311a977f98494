package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ebanking/portal_backend/internal/apperrors"
	"github.com/ebanking/portal_backend/internal/core/domain"
	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/platform/config"
	"github.com/ebanking/portal_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService issues and validates customer identity tokens. Stateless:
// validity is a pure function of signature integrity and current time.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateToken creates a new signed JWT for the customer.
func (s *tokenService) GenerateToken(ctx context.Context, customerID string) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	token, err := utils.GenerateJWT(customerID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiryTime, nil
}

// ValidateToken verifies the token and reports whether it authenticates the
// given principal. Expiry surfaces as apperrors.ErrTokenExpired; every other
// verification failure as apperrors.ErrTokenInvalid.
func (s *tokenService) ValidateToken(token string, principal domain.Principal) (bool, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return false, mapTokenError(err)
	}
	if claims.Subject != principal.CustomerID {
		return false, nil
	}
	// ParseAndValidateJWT already rejects expired tokens; the explicit check
	// stays so validity never depends on library defaults alone.
	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return false, fmt.Errorf("%w: expired at %v", apperrors.ErrTokenExpired, claims.ExpiresAt)
	}
	return true, nil
}

// ExtractSubject decodes and verifies the token and returns its subject claim.
func (s *tokenService) ExtractSubject(token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", mapTokenError(err)
	}
	return claims.Subject, nil
}

// mapTokenError folds jwt library errors into the application error taxonomy,
// keeping expiry distinguishable from malformed/bad-signature tokens.
func mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return fmt.Errorf("%w: %v", apperrors.ErrTokenExpired, err)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
}
