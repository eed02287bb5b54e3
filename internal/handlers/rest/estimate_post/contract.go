//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=estimate_post_test
package estimate_post

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
	Estimate(ctx context.Context, pickup, dropoff string, vehicleType entities.VehicleType) (*entities.Estimate, error)
}
