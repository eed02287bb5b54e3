//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=estimator_test
package estimator

import (
	"context"

	"github.com/shopspring/decimal"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

// Geocoder возвращает ErrAddressNotFound если адрес не распознан.
type Geocoder interface {
	Lookup(ctx context.Context, address string) (*entities.Location, error)
}

// Router возвращает расстояние по дорогам в метрах.
type Router interface {
	DrivingDistance(ctx context.Context, from, to entities.Location) (float64, error)
}

// Cache адрес -> координаты, ключ - точный текст адреса.
type Cache interface {
	Get(ctx context.Context, address string) (*entities.Location, bool, error)
	Set(ctx context.Context, address string, location entities.Location) error
}

type RateFactory interface {
	RatePerKm(vehicleType entities.VehicleType) decimal.Decimal
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
