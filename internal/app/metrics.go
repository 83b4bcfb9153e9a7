package app

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/mrsedghi/deliverino-sub000/internal/metrics"
)

// counters are process singletons; containers may be built more than once
// (tests), so registration happens exactly once.
var (
	metricsOnce sync.Once
	counterSet  metricsOut
)

type metricsOut struct {
	dig.Out

	OffersCreated     prometheus.Counter `name:"offers_created_total"`
	OffersExpired     prometheus.Counter `name:"offers_expired_total"`
	Escalations       prometheus.Counter `name:"dispatch_escalations_total"`
	RateLimitExceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetries    prometheus.Counter `name:"gateway_retries_total"`
}

func newMetrics() metricsOut {
	metricsOnce.Do(func() {
		counterSet = metricsOut{
			OffersCreated:     metrics.NewOffersCreatedTotal(),
			OffersExpired:     metrics.NewOffersExpiredTotal(),
			Escalations:       metrics.NewDispatchEscalationsTotal(),
			RateLimitExceeded: metrics.NewRateLimitExceededTotal(),
			GatewayRetries:    metrics.NewGatewayRetriesTotal(),
		}
		prometheus.MustRegister(
			counterSet.OffersCreated,
			counterSet.OffersExpired,
			counterSet.Escalations,
			counterSet.RateLimitExceeded,
			counterSet.GatewayRetries,
		)
	})
	return counterSet
}
