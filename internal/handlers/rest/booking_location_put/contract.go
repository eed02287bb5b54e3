//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_location_put_test
package booking_location_put

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
	UpdateDriverLocation(ctx context.Context, bookingID, driverID string, location entities.Location) error
}
