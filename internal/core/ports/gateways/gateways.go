package gateways

import (
	"context"

	"github.com/ebanking/portal_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// RateSource provides current exchange rates for a base currency as a mapping
// of target currency code to rate. Implementations are expected to bound the
// call with the context deadline; any failure (network, non-2xx, malformed
// body) surfaces as an error and is handled by the converter's fallback path.
type RateSource interface {
	FetchRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)
}

// TransactionPublisher sends transaction messages to the ingestion queue.
type TransactionPublisher interface {
	PublishTransaction(ctx context.Context, msg dto.TransactionMessage) error
	Close() error
}
