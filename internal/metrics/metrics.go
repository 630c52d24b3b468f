package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	Intents       *prometheus.CounterVec
	CacheLookups  *prometheus.CounterVec
	FetchErrors   *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	Rankings      *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil registerer
// leaves them unregistered, which tests rely on.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptobuddy_intents_total",
				Help: "Messages answered, by resolved intent",
			},
			[]string{"intent"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptobuddy_cache_lookups_total",
				Help: "Coin cache lookups, by result (hit, miss)",
			},
			[]string{"result"},
		),
		FetchErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptobuddy_fetch_errors_total",
				Help: "Failed market-data fetches, by coin",
			},
			[]string{"coin"},
		),
		FetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cryptobuddy_fetch_duration_seconds",
				Help:    "Market-data fetch latency",
				Buckets: prometheus.DefBuckets,
			},
		),
		Rankings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptobuddy_rankings_total",
				Help: "Rankings computed, by kind and outcome (match, empty)",
			},
			[]string{"kind", "outcome"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Intents, m.CacheLookups, m.FetchErrors, m.FetchDuration, m.Rankings)
	}
	return m
}
