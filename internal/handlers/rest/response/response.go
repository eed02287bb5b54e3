package response

import (
	"encoding/json"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error пишет статус и сообщение, по которому клиент понимает что делать дальше.
func Error(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.Error{Message: message})
}

func Booking(booking entities.Booking) dto.Booking {
	out := dto.Booking{
		BookingId:     booking.ID,
		UserId:        booking.UserID,
		Pickup:        booking.Pickup,
		Dropoff:       booking.Dropoff,
		VehicleType:   booking.VehicleType.String(),
		Cost:          booking.Cost.StringFixed(2),
		TripTime:      booking.TripTime,
		ScheduledTime: booking.ScheduledTime,
		DriverId:      booking.DriverID,
		Status:        dto.BookingStatus(booking.Status),
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
	if booking.DriverLocation != nil {
		location := Location(*booking.DriverLocation)
		out.DriverLocation = &location
	}
	return out
}

func Bookings(bookings []entities.Booking) []dto.Booking {
	out := make([]dto.Booking, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, Booking(booking))
	}
	return out
}

func Location(location entities.Location) dto.Location {
	return dto.Location{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

func Session(session entities.Session) dto.Session {
	return dto.Session{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Account:   Account(session.Account),
	}
}

func Account(account entities.Account) dto.Account {
	return dto.Account{
		Id:        account.ID,
		Email:     account.Email,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
	}
}
