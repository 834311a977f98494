package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portal_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"method", "route"})

	// RateLookupsTotal counts resolved exchange rates by origin:
	// cache, live, fallback (static table) or parity (rate 1).
	RateLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_rate_lookups_total",
		Help: "Exchange rate resolutions by origin",
	}, []string{"origin"})

	// TransactionsIngestedTotal counts transactions persisted from the queue.
	TransactionsIngestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_transactions_ingested_total",
		Help: "Transactions persisted by the Kafka consumer",
	})
)
