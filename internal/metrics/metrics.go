package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewOffersCreatedTotal returns a Prometheus counter for the number of offers created by dispatch cycles
func NewOffersCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offers_created_total",
		Help: "Total number of offers created by dispatch cycles",
	})
}

// NewOffersExpiredTotal returns a Prometheus counter for the number of offers expired by the sweep loop
func NewOffersExpiredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offers_expired_total",
		Help: "Total number of offers expired by the sweep loop",
	})
}

// NewDispatchEscalationsTotal returns a Prometheus counter for the number of orders escalated with no courier found
func NewDispatchEscalationsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_escalations_total",
		Help: "Total number of orders escalated with no courier found",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}
