package booking_mongo

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"logistics/internal/entities"
)

func toDocument(b entities.Booking) (bookingDocument, error) {
	cost, err := primitive.ParseDecimal128(b.Cost.StringFixed(2))
	if err != nil {
		return bookingDocument{}, fmt.Errorf("convert cost %s: %w", b.Cost, err)
	}

	doc := bookingDocument{
		ID:            b.ID,
		UserID:        b.UserID,
		Pickup:        b.Pickup,
		Dropoff:       b.Dropoff,
		VehicleType:   b.VehicleType.String(),
		Cost:          cost,
		TripTime:      b.TripTime,
		ScheduledTime: b.ScheduledTime.UTC(),
		DriverID:      b.DriverID,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt.UTC(),
		UpdatedAt:     b.UpdatedAt.UTC(),
	}
	if b.DriverLocation != nil {
		doc.DriverLocation = &locationDocument{
			Latitude:  b.DriverLocation.Latitude,
			Longitude: b.DriverLocation.Longitude,
		}
	}
	return doc, nil
}

func toDomain(doc *bookingDocument) (*entities.Booking, error) {
	cost, err := decimal.NewFromString(doc.Cost.String())
	if err != nil {
		return nil, fmt.Errorf("parse cost %q: %w", doc.Cost.String(), err)
	}

	b := &entities.Booking{
		ID:            doc.ID,
		UserID:        doc.UserID,
		Pickup:        doc.Pickup,
		Dropoff:       doc.Dropoff,
		VehicleType:   entities.VehicleType(doc.VehicleType),
		Cost:          cost,
		TripTime:      doc.TripTime,
		ScheduledTime: doc.ScheduledTime.UTC(),
		DriverID:      doc.DriverID,
		Status:        entities.BookingStatus(doc.Status),
		CreatedAt:     doc.CreatedAt.UTC(),
		UpdatedAt:     doc.UpdatedAt.UTC(),
	}
	if doc.DriverLocation != nil {
		b.DriverLocation = &entities.Location{
			Latitude:  doc.DriverLocation.Latitude,
			Longitude: doc.DriverLocation.Longitude,
		}
	}
	return b, nil
}

func statusStrings(statuses []entities.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
