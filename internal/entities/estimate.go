package entities

import "github.com/shopspring/decimal"

type Estimate struct {
	Cost            decimal.Decimal
	TripTimeMinutes int
	DistanceKm      float64
}

type Overview struct {
	AccountsByRole   map[AccountRole]int64
	BookingsByStatus map[BookingStatus]int64
	TotalBookings    int64
}
