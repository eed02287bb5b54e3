package booking_events

import (
	"time"

	"logistics/internal/entities"
)

// StatusChangedEvent - формат сообщения в топике смены статусов.
type StatusChangedEvent struct {
	BookingID  string    `json:"booking_id"`
	Status     string    `json:"status"`
	DriverID   string    `json:"driver_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func FromDomain(change entities.BookingStatusChange) StatusChangedEvent {
	return StatusChangedEvent{
		BookingID:  change.BookingID,
		Status:     change.Status.String(),
		DriverID:   change.DriverID,
		OccurredAt: change.OccurredAt.UTC(),
	}
}

func (e StatusChangedEvent) ToDomain() entities.BookingStatusChange {
	return entities.BookingStatusChange{
		BookingID:  e.BookingID,
		Status:     entities.BookingStatus(e.Status),
		DriverID:   e.DriverID,
		OccurredAt: e.OccurredAt.UTC(),
	}
}
