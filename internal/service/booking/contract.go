//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, booking entities.Booking) error
	GetByID(ctx context.Context, id string) (*entities.Booking, error)
	ListAll(ctx context.Context) ([]entities.Booking, error)
	ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Booking, error)
	ListByDriver(ctx context.Context, driverID string) ([]entities.Booking, error)
	// UpdateFields с guard == nil обычное обновление, иначе conditional write
	// который возвращает ErrBookingConflict если условие уже не выполняется.
	UpdateFields(ctx context.Context, id string, modify entities.BookingModify, guard *entities.BookingGuard) (*entities.Booking, error)
}

type Estimator interface {
	Estimate(ctx context.Context, pickup, dropoff string, vehicleType entities.VehicleType) (*entities.Estimate, error)
}

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, change entities.BookingStatusChange) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
