package vehicle_rate

import (
	"github.com/shopspring/decimal"
	"logistics/internal/entities"
)

// RateFactory тариф за километр по типу транспорта.
type RateFactory struct{}

func New() *RateFactory {
	return &RateFactory{}
}

func (f *RateFactory) RatePerKm(vehicleType entities.VehicleType) decimal.Decimal {
	switch vehicleType {
	case entities.VehicleVan:
		return decimal.NewFromInt(50)
	case entities.VehicleTruck:
		return decimal.NewFromInt(80)
	case entities.VehicleCar:
		return decimal.NewFromInt(30)
	default:
		return decimal.NewFromInt(30)
	}
}
