//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_history_get_test
package booking_history_get

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type BookingService interface {
	GetBooking(ctx context.Context, id string) (*entities.Booking, error)
}

type HistoryService interface {
	History(ctx context.Context, bookingID string) ([]entities.BookingStatusChange, error)
}
