//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type PositionSource interface {
	Position(ctx context.Context) (entities.Location, error)
}

type BookingService interface {
	GetBooking(ctx context.Context, bookingID string) (*entities.Booking, error)
	ListActiveForDriver(ctx context.Context, driverID string) ([]entities.Booking, error)
	UpdateDriverLocation(ctx context.Context, bookingID, driverID string, location entities.Location) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
