//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_history_test
package booking_history

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	// Append идемпотентен по (booking_id, status), false если запись уже была.
	Append(ctx context.Context, change entities.BookingStatusChange) (bool, error)
	ListByBooking(ctx context.Context, bookingID string) ([]entities.BookingStatusChange, error)
}
