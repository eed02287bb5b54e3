package booking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/auth"
	"logistics/internal/service/booking"
	"logistics/internal/service/estimator"
	"logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, "sign in required")
		return
	}

	var bookingDTO dto.BookingCreate
	err := json.NewDecoder(r.Body).Decode(&bookingDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "request body must be JSON with pickup, dropoff and scheduled_time")
		return
	}

	request := entities.BookingRequest{
		Pickup:        bookingDTO.Pickup,
		Dropoff:       bookingDTO.Dropoff,
		ScheduledTime: bookingDTO.ScheduledTime,
	}
	if bookingDTO.VehicleType != nil {
		request.VehicleType = entities.VehicleType(*bookingDTO.VehicleType)
	}

	created, err := h.service.CreateBooking(r.Context(), actor.AccountID, request)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, estimator.ErrMissingAddress):
			response.Error(w, h.log, http.StatusBadRequest, "pickup and dropoff addresses are required")
		case errors.Is(err, booking.ErrInvalidVehicleType):
			response.Error(w, h.log, http.StatusBadRequest, "vehicle type must be one of car, van, truck")
		case errors.Is(err, booking.ErrInvalidScheduledTime):
			response.Error(w, h.log, http.StatusBadRequest, "scheduled_time is required")
		case errors.Is(err, estimator.ErrAddressNotFound):
			response.Error(w, h.log, http.StatusUnprocessableEntity, "address not found, check pickup and dropoff")
		case errors.Is(err, estimator.ErrNoRoute):
			response.Error(w, h.log, http.StatusUnprocessableEntity, "no driving route between pickup and dropoff")
		case errors.Is(err, estimator.ErrNetwork):
			response.Error(w, h.log, http.StatusServiceUnavailable, "could not estimate the trip, try again later")
		case errors.Is(err, booking.ErrStoreUnavailable), errors.Is(err, booking.ErrStorePermission):
			response.Failure(w, h.log, err)
		default:
			h.log.Error("create booking", logger.NewField("error", err))
			response.Failure(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.Booking(*created))
}
