package booking_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, "sign in required")
		return
	}

	bookingEntity, err := h.service.GetBooking(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			response.Error(w, h.log, http.StatusNotFound, "booking not found")
		case errors.Is(err, booking.ErrInvalidBookingID):
			response.Error(w, h.log, http.StatusBadRequest, "booking id is required")
		default:
			response.Failure(w, h.log, err)
		}
		return
	}

	// чужой заказ отдаем как несуществующий
	if !bookingEntity.VisibleTo(actor) {
		response.Error(w, h.log, http.StatusNotFound, "booking not found")
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Booking(*bookingEntity))
}
