package booking_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bookings_by_status",
			Help: "Number of bookings in each lifecycle status",
		},
		[]string{"status"},
	)

	AccountsByRole = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "accounts_by_role",
			Help: "Number of registered accounts per role",
		},
		[]string{"role"},
	)
)
