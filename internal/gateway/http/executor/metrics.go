package executor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_retries_total",
			Help: "Total number of gateway requests that needed more than one attempt",
		},
		[]string{"service", "method", "code"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "code"},
	)

	GatewayRetryWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_retry_wait_seconds",
			Help:    "Backoff pause before a repeated gateway attempt",
			Buckets: []float64{.05, .1, .25, .5, 1, 2},
		},
		[]string{"service"},
	)
)
