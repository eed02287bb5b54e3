package booking

import (
	"strings"

	"logistics/internal/entities"
)

// ParseStatus принимает и snake_case и написание с пробелами ("en route to pickup").
func ParseStatus(raw string) (entities.BookingStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.Join(strings.Fields(normalized), "_")

	status := entities.BookingStatus(normalized)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// checkDriverTransition проверяет переход после принятия заказа.
// pending -> accepted здесь запрещен, он делается только через AcceptBooking.
func checkDriverTransition(current *entities.Booking, actorID string, next entities.BookingStatus) error {
	if current.Status == entities.BookingPending {
		return ErrInvalidTransition
	}
	if current.DriverID != actorID {
		return ErrNotAssignedDriver
	}

	expected, ok := current.Status.Next()
	if !ok || expected != next {
		return ErrInvalidTransition
	}
	return nil
}
