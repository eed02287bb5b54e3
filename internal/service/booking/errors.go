package booking

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrInvalidScheduledTime  = errors.New("invalid scheduled time")
	ErrInvalidStatus         = errors.New("invalid booking status")
	ErrInvalidLocation       = errors.New("invalid location")

	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingExists   = errors.New("booking already exists")
	// ErrBookingConflict guard conditional write не выполнился
	ErrBookingConflict = errors.New("booking changed concurrently")

	ErrAlreadyAccepted   = errors.New("booking already accepted by another driver")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotAssignedDriver = fmt.Errorf("%w: not the assigned driver", ErrInvalidTransition)
	ErrBookingInactive   = errors.New("booking is not in an active delivery status")

	ErrStoreUnavailable = errors.New("booking store unavailable")
	ErrStorePermission  = errors.New("booking store permission denied")
)
