package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID             string
	UserID         string
	Pickup         string
	Dropoff        string
	VehicleType    VehicleType
	Cost           decimal.Decimal
	TripTime       int // минуты
	ScheduledTime  time.Time
	DriverID       string
	Status         BookingStatus
	DriverLocation *Location
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VehicleType string

const (
	VehicleCar   VehicleType = "car"
	VehicleVan   VehicleType = "van"
	VehicleTruck VehicleType = "truck"
)

const DefaultVehicleType = VehicleCar

func (t VehicleType) String() string {
	return string(t)
}

func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleCar, VehicleVan, VehicleTruck:
		return true
	default:
		return false
	}
}

type BookingStatus string

const (
	BookingPending         BookingStatus = "pending"
	BookingAccepted        BookingStatus = "accepted"
	BookingEnRouteToPickup BookingStatus = "en_route_to_pickup"
	BookingGoodsCollected  BookingStatus = "goods_collected"
	BookingDelivered       BookingStatus = "delivered"
)

// порядок важен: статус двигается только вперед по этому списку
var bookingStatusOrder = []BookingStatus{
	BookingPending,
	BookingAccepted,
	BookingEnRouteToPickup,
	BookingGoodsCollected,
	BookingDelivered,
}

func (s BookingStatus) String() string {
	return string(s)
}

// Rank возвращает позицию статуса в жизненном цикле, -1 для неизвестного.
func (s BookingStatus) Rank() int {
	for i, status := range bookingStatusOrder {
		if status == s {
			return i
		}
	}
	return -1
}

func (s BookingStatus) IsValid() bool {
	return s.Rank() >= 0
}

// Next возвращает единственный допустимый следующий статус.
func (s BookingStatus) Next() (BookingStatus, bool) {
	rank := s.Rank()
	if rank < 0 || rank == len(bookingStatusOrder)-1 {
		return "", false
	}
	return bookingStatusOrder[rank+1], true
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingDelivered
}

// IsDriverActive - водитель назначен, а доставка еще не завершена.
func (s BookingStatus) IsDriverActive() bool {
	rank := s.Rank()
	return rank > BookingPending.Rank() && rank < BookingDelivered.Rank()
}

func BookingStatuses() []BookingStatus {
	statuses := make([]BookingStatus, len(bookingStatusOrder))
	copy(statuses, bookingStatusOrder)
	return statuses
}

func ActiveDriverStatuses() []BookingStatus {
	return []BookingStatus{
		BookingAccepted,
		BookingEnRouteToPickup,
		BookingGoodsCollected,
	}
}

type Location struct {
	Latitude  float64
	Longitude float64
}

// BookingModify - частичное обновление, nil поля не трогаем.
type BookingModify struct {
	Status         *BookingStatus
	DriverID       *string
	DriverLocation *Location
}

// BookingGuard условие для conditional write (compare-and-swap).
// Пустые Statuses и nil DriverID означают отсутствие соответствующего условия.
type BookingGuard struct {
	Statuses []BookingStatus
	DriverID *string
}

type BookingStatusChange struct {
	BookingID  string
	Status     BookingStatus
	DriverID   string
	OccurredAt time.Time
}

// BookingRequest - то что присылает заказчик, остальное считает сервис.
type BookingRequest struct {
	Pickup        string
	Dropoff       string
	VehicleType   VehicleType
	ScheduledTime time.Time
}

// VisibleTo: заказчик видит свои заказы, водитель pending и назначенные ему, админ все.
func (b Booking) VisibleTo(actor Actor) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleDriver:
		return b.Status == BookingPending || b.DriverID == actor.AccountID
	case RoleUser:
		return b.UserID == actor.AccountID
	default:
		return false
	}
}
