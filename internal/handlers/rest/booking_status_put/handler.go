package booking_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	var statusDTO dto.StatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "request body must be JSON with status")
		return
	}

	next, err := booking.ParseStatus(statusDTO.Status)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "unknown status, use accepted, en_route_to_pickup, goods_collected or delivered")
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], actor.AccountID, next)
	if err != nil {
		// ErrNotAssignedDriver оборачивает ErrInvalidTransition, проверяем его первым
		switch {
		case errors.Is(err, booking.ErrNotAssignedDriver):
			response.Error(w, h.log, http.StatusForbidden, "booking is assigned to another driver")
		case errors.Is(err, booking.ErrInvalidTransition):
			response.Error(w, h.log, http.StatusConflict, "status can only move one step forward, reload the booking")
		case errors.Is(err, booking.ErrBookingNotFound):
			response.Error(w, h.log, http.StatusNotFound, "booking not found")
		case errors.Is(err, booking.ErrInvalidBookingID),
			errors.Is(err, booking.ErrInvalidStatus):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			response.Failure(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Booking(*updated))
}
