package tracking

import (
	"context"
	"time"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

// Follower отдает наблюдателю свежее состояние заказа раз в interval.
type Follower struct {
	bookings BookingService
	log      serviceLogger
	interval time.Duration
}

func NewFollower(bookings BookingService, log serviceLogger, interval time.Duration) *Follower {
	return &Follower{
		bookings: bookings,
		log:      log,
		interval: interval,
	}
}

// Follow читает заказ сразу и затем на каждом тике, передавая его в send.
// Ошибка чтения повторяется на следующем тике. Ошибка send завершает цикл,
// доставленный заказ отправляется последний раз и цикл завершается без ошибки.
func (f *Follower) Follow(ctx context.Context, bookingID string, send func(entities.Booking) error) error {
	if f.interval <= 0 {
		return ErrInvalidInterval
	}

	followLog := f.log.With(logger.NewField("booking", bookingID))

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		done, err := f.push(ctx, followLog, bookingID, send)
		if err != nil || done {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (f *Follower) push(
	ctx context.Context,
	log logger.Logger,
	bookingID string,
	send func(entities.Booking) error,
) (bool, error) {
	booking, err := f.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		if ctx.Err() != nil {
			return true, ctx.Err()
		}
		log.Warn("read booking for tracking, retry on next tick", logger.NewField("error", err))
		return false, nil
	}

	if err := send(*booking); err != nil {
		return true, err
	}
	return booking.Status.IsTerminal(), nil
}
