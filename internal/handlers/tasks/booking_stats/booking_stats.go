package booking_stats

import (
	"context"
	"fmt"
	"time"

	"logistics/pkg/logger"
)

// BookingStats периодически выгружает сводку в prometheus gauges.
type BookingStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBookingStats(log logger.Logger, service Service, interval time.Duration) *BookingStats {
	return &BookingStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BookingStats) TTL() time.Duration {
	return b.interval
}

func (b *BookingStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	overview, err := b.service.Overview(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("booking stats: %w", err)
	}

	for status, count := range overview.BookingsByStatus {
		BookingsByStatus.WithLabelValues(status.String()).Set(float64(count))
	}
	for role, count := range overview.AccountsByRole {
		AccountsByRole.WithLabelValues(role.String()).Set(float64(count))
	}

	b.log.With(
		logger.NewField("total_bookings", overview.TotalBookings),
	).Debug("booking stats")

	return nil
}

func (b *BookingStats) Info() string {
	return "booking stats"
}
