//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_status_put_test
package booking_status_put

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

type Service interface {
	UpdateStatus(ctx context.Context, bookingID, driverID string, next entities.BookingStatus) (*entities.Booking, error)
}
