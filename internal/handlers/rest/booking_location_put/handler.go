package booking_location_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/auth"
	"logistics/internal/service/booking"
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

	var locationDTO dto.Location
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "request body must be JSON with latitude and longitude")
		return
	}

	location := entities.Location{
		Latitude:  locationDTO.Latitude,
		Longitude: locationDTO.Longitude,
	}

	err = h.service.UpdateDriverLocation(r.Context(), mux.Vars(r)["id"], actor.AccountID, location)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidLocation),
			errors.Is(err, booking.ErrInvalidBookingID):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, booking.ErrNotAssignedDriver):
			response.Error(w, h.log, http.StatusForbidden, "booking is assigned to another driver")
		case errors.Is(err, booking.ErrBookingInactive):
			response.Error(w, h.log, http.StatusConflict, "location is accepted only while the delivery is in progress")
		case errors.Is(err, booking.ErrBookingNotFound):
			response.Error(w, h.log, http.StatusNotFound, "booking not found")
		default:
			response.Failure(w, h.log, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
