package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConverterSvcFacade defines the interface for currency conversion.
type ConverterSvcFacade interface {
	// Convert returns amount expressed in the target currency, rounded to two
	// decimals half-up. A nil amount converts to zero; a missing currency code
	// skips conversion and returns the amount unchanged. Convert never fails:
	// rate lookup problems degrade to a static fallback rate or to returning
	// the original amount.
	Convert(ctx context.Context, amount *decimal.Decimal, fromCurrency, toCurrency string, date time.Time) decimal.Decimal

	// ClearCache empties the rate cache unconditionally.
	ClearCache()
}
