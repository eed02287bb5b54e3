//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bookings_pending_get_test
package bookings_pending_get

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
	ListPending(ctx context.Context) ([]entities.Booking, error)
}
