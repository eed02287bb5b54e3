package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Отдельное ведро на каждого клиента, поэтому в метрике только маршрут: адрес клиента дал бы неограниченную кардинальность.
var (
	RateLimitExceededTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_requests_total",
			Help: "Requests rejected with 429 because the client bucket was empty",
		},
		[]string{"method", "route"},
	)

	RateLimitPassedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limiter_passed_total",
			Help: "Requests that got a token from the client bucket",
		},
	)
)
