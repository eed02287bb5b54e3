package booking

import (
	"fmt"

	"github.com/shopspring/decimal"
	"logistics/internal/entities"
)

func ToDomain(b *BookingDB) (*entities.Booking, error) {
	if b == nil {
		return nil, nil
	}

	cost, err := decimal.NewFromString(b.Cost)
	if err != nil {
		return nil, fmt.Errorf("parse cost %q: %w", b.Cost, err)
	}

	booking := &entities.Booking{
		ID:            b.ID,
		UserID:        b.UserID,
		Pickup:        b.Pickup,
		Dropoff:       b.Dropoff,
		VehicleType:   entities.VehicleType(b.VehicleType),
		Cost:          cost,
		TripTime:      b.TripTime,
		ScheduledTime: b.ScheduledTime.UTC(),
		DriverID:      b.DriverID,
		Status:        entities.BookingStatus(b.Status),
		CreatedAt:     b.CreatedAt.UTC(),
		UpdatedAt:     b.UpdatedAt.UTC(),
	}
	if b.DriverLatitude != nil && b.DriverLongitude != nil {
		booking.DriverLocation = &entities.Location{
			Latitude:  *b.DriverLatitude,
			Longitude: *b.DriverLongitude,
		}
	}
	return booking, nil
}

func ToDomainList(bookingsDB []BookingDB) ([]entities.Booking, error) {
	result := make([]entities.Booking, 0, len(bookingsDB))
	for i := range bookingsDB {
		booking, err := ToDomain(&bookingsDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *booking)
	}
	return result, nil
}

func statusStrings(statuses []entities.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
