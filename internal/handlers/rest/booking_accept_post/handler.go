package booking_accept_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/auth"
	"logistics/internal/service/booking"
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

	bookingID := mux.Vars(r)["id"]
	accepted, err := h.service.AcceptBooking(r.Context(), bookingID, actor.AccountID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrAlreadyAccepted):
			h.log.With(
				logger.NewField("booking_id", bookingID),
				logger.NewField("driver_id", actor.AccountID),
			).Info("accept lost the race")
			response.Error(w, h.log, http.StatusConflict, "booking already accepted by another driver, pick another job")
		case errors.Is(err, booking.ErrBookingNotFound):
			response.Error(w, h.log, http.StatusNotFound, "booking not found")
		case errors.Is(err, booking.ErrInvalidBookingID),
			errors.Is(err, booking.ErrMissingRequiredFields):
			response.Error(w, h.log, http.StatusBadRequest, "booking id is required")
		default:
			response.Failure(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Booking(*accepted))
}
