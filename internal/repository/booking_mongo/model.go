package booking_mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingDocument struct {
	ID             string               `bson:"_id"`
	UserID         string               `bson:"userId"`
	Pickup         string               `bson:"pickup"`
	Dropoff        string               `bson:"dropoff"`
	VehicleType    string               `bson:"vehicleType"`
	Cost           primitive.Decimal128 `bson:"cost"`
	TripTime       int                  `bson:"tripTime"`
	ScheduledTime  time.Time            `bson:"scheduledTime"`
	DriverID       string               `bson:"driverId"`
	Status         string               `bson:"status"`
	DriverLocation *locationDocument    `bson:"driverLocation,omitempty"`
	CreatedAt      time.Time            `bson:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt"`
}

type locationDocument struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type statusCount struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}
