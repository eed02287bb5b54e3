package booking_history

import "errors"

var (
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrInvalidEvent     = errors.New("invalid status change event")

	ErrStoreUnavailable = errors.New("history store unavailable")
	ErrStorePermission  = errors.New("history store permission denied")
)
