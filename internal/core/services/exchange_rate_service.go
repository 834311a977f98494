package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ebanking/portal_backend/internal/core/ports/gateways"
	portssvc "github.com/ebanking/portal_backend/internal/core/ports/services"
	"github.com/ebanking/portal_backend/internal/platform/metrics"
	"github.com/ebanking/portal_backend/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// rateKey identifies one cached exchange rate. Codes are normalized to
// uppercase before key construction so "usd"->"GBP" and "USD"->"GBP" share
// an entry.
type rateKey struct {
	From string
	To   string
	Date string // YYYY-MM-DD
}

// rateOrigin tags where a resolved rate came from.
type rateOrigin string

const (
	rateOriginCache    rateOrigin = "cache"
	rateOriginLive     rateOrigin = "live"
	rateOriginFallback rateOrigin = "fallback"
	rateOriginParity   rateOrigin = "parity"
)

// fallbackRates is the static table consulted when the upstream source is
// unavailable. Pairs are listed in both directions; anything else resolves
// to parity.
var fallbackRates = map[[2]string]decimal.Decimal{
	{"USD", "GBP"}: decimal.RequireFromString("0.79"),
	{"GBP", "USD"}: decimal.RequireFromString("1.27"),
	{"EUR", "GBP"}: decimal.RequireFromString("0.86"),
	{"GBP", "EUR"}: decimal.RequireFromString("1.16"),
	{"CHF", "GBP"}: decimal.RequireFromString("0.89"),
	{"GBP", "CHF"}: decimal.RequireFromString("1.12"),
}

// ExchangeRateService converts amounts between currencies, caching live rates
// per (from, to, date). Rate lookup failures never surface to the caller:
// they degrade to the static fallback table, to parity, or to returning the
// original amount. Safe for concurrent use.
type ExchangeRateService struct {
	source  gateways.RateSource
	timeout time.Duration
	logger  *slog.Logger

	mu    sync.RWMutex
	cache map[rateKey]decimal.Decimal

	flight singleflight.Group
}

var _ portssvc.ConverterSvcFacade = (*ExchangeRateService)(nil)

// NewExchangeRateService creates a new ExchangeRateService. The cache is
// owned by the returned service; timeout bounds each upstream rate fetch.
func NewExchangeRateService(source gateways.RateSource, timeout time.Duration, logger *slog.Logger) *ExchangeRateService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExchangeRateService{
		source:  source,
		timeout: timeout,
		logger:  logger,
		cache:   make(map[rateKey]decimal.Decimal),
	}
}

// Convert returns amount expressed in toCurrency, rounded to two decimals
// half-up. A nil amount converts to zero; a missing currency code skips the
// conversion. Same-currency conversions return the amount untouched with no
// cache or network access.
func (s *ExchangeRateService) Convert(ctx context.Context, amount *decimal.Decimal, fromCurrency, toCurrency string, date time.Time) (converted decimal.Decimal) {
	if amount == nil {
		s.logger.Warn("conversion skipped, amount missing",
			slog.String("from", fromCurrency), slog.String("to", toCurrency))
		return decimal.Zero
	}

	// Conversion is a display concern: whatever goes wrong below, the caller
	// gets the original amount back, never a failure.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("conversion failed, returning original amount",
				slog.String("from", fromCurrency), slog.String("to", toCurrency),
				slog.Any("panic", r))
			converted = *amount
		}
	}()

	if fromCurrency == "" || toCurrency == "" {
		s.logger.Warn("conversion skipped, currency missing",
			slog.String("from", fromCurrency), slog.String("to", toCurrency))
		return *amount
	}

	from := utils.NormalizeCurrencyCode(fromCurrency)
	to := utils.NormalizeCurrencyCode(toCurrency)
	if from == to {
		return *amount
	}

	resolved := s.getRate(ctx, from, to, date)
	return amount.Mul(resolved.rate).Round(2)
}

// ClearCache empties the entire rate cache unconditionally.
func (s *ExchangeRateService) ClearCache() {
	s.mu.Lock()
	s.cache = make(map[rateKey]decimal.Decimal)
	s.mu.Unlock()
	s.logger.Debug("exchange rate cache cleared")
}

// CacheSize returns the number of cached rates. Used by the admin endpoint
// and in tests.
func (s *ExchangeRateService) CacheSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

type resolvedRate struct {
	rate   decimal.Decimal
	origin rateOrigin
}

// getRate resolves the rate for one normalized currency pair: cache first,
// then the upstream source, then the static fallback table. Only live rates
// are cached; fallback and parity rates are recomputed on every miss so a
// recovered upstream takes over immediately.
func (s *ExchangeRateService) getRate(ctx context.Context, from, to string, date time.Time) resolvedRate {
	key := rateKey{From: from, To: to, Date: date.Format("2006-01-02")}

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		metrics.RateLookupsTotal.WithLabelValues(string(rateOriginCache)).Inc()
		return resolvedRate{rate: cached, origin: rateOriginCache}
	}

	// Coalesce concurrent misses for the same key into one upstream call.
	// Losers of the race reuse the winner's result; a failed flight falls
	// through to the static table below.
	flightKey := key.From + "|" + key.To + "|" + key.Date
	v, err, _ := s.flight.Do(flightKey, func() (interface{}, error) {
		return s.fetchLiveRate(ctx, from, to)
	})
	if err == nil {
		rate := v.(decimal.Decimal)
		s.mu.Lock()
		s.cache[key] = rate
		s.mu.Unlock()
		metrics.RateLookupsTotal.WithLabelValues(string(rateOriginLive)).Inc()
		return resolvedRate{rate: rate, origin: rateOriginLive}
	}

	s.logger.Warn("rate source unavailable, using fallback rate",
		slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))

	if rate, ok := fallbackRates[[2]string{from, to}]; ok {
		metrics.RateLookupsTotal.WithLabelValues(string(rateOriginFallback)).Inc()
		return resolvedRate{rate: rate, origin: rateOriginFallback}
	}
	metrics.RateLookupsTotal.WithLabelValues(string(rateOriginParity)).Inc()
	return resolvedRate{rate: decimal.NewFromInt(1), origin: rateOriginParity}
}

// fetchLiveRate queries the upstream source for one pair under the configured
// timeout. Missing target entries and non-positive rates count as failures.
func (s *ExchangeRateService) fetchLiveRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rates, err := s.source.FetchRates(fetchCtx, from)
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := rates[to]
	if !ok {
		return decimal.Zero, errMissingRate(to)
	}
	if !rate.IsPositive() {
		return decimal.Zero, errInvalidRate(to)
	}
	return rate, nil
}

type errMissingRate string

func (e errMissingRate) Error() string { return "no rate for target currency " + string(e) }

type errInvalidRate string

func (e errInvalidRate) Error() string { return "non-positive rate for target currency " + string(e) }
