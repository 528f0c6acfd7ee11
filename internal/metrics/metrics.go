package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	RateRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_requests_total",
			Help: "Total number of exchange rate queries",
		},
	)

	ProviderFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_fetches_total",
			Help: "Total number of snapshot fetches issued to the rate provider",
		},
		[]string{"base"},
	)

	ProviderFetchFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "provider_fetch_failures_total",
			Help: "Total number of failed rate provider fetches",
		},
	)

	RatesSyncedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rates_synced_total",
			Help: "Total number of rate rows persisted by the sync engine",
		},
	)
)
