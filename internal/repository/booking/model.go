package booking

import "time"

type BookingDB struct {
	ID              string
	UserID          string
	Pickup          string
	Dropoff         string
	VehicleType     string
	Cost            string
	TripTime        int
	ScheduledTime   time.Time
	DriverID        string
	Status          string
	DriverLatitude  *float64
	DriverLongitude *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// scan порядок полей совпадает с bookingColumns
func (b *BookingDB) scanTargets() []any {
	return []any{
		&b.ID,
		&b.UserID,
		&b.Pickup,
		&b.Dropoff,
		&b.VehicleType,
		&b.Cost,
		&b.TripTime,
		&b.ScheduledTime,
		&b.DriverID,
		&b.Status,
		&b.DriverLatitude,
		&b.DriverLongitude,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}
