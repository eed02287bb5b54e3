package booking_history_get

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/auth"
	"logistics/internal/service/booking"
)

type Handler struct {
	log      handlerLogger
	bookings BookingService
	history  HistoryService
}

func New(log handlerLogger, bookings BookingService, history HistoryService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		bookings: bookings,
		history:  history,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, "sign in required")
		return
	}

	bookingEntity, err := h.bookings.GetBooking(r.Context(), mux.Vars(r)["id"])
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
	if !bookingEntity.VisibleTo(actor) {
		response.Error(w, h.log, http.StatusNotFound, "booking not found")
		return
	}

	changes, err := h.history.History(r.Context(), bookingEntity.ID)
	if err != nil {
		response.Failure(w, h.log, err)
		return
	}

	out := make([]dto.StatusChange, 0, len(changes))
	for _, change := range changes {
		item := dto.StatusChange{
			Status:     change.Status.String(),
			OccurredAt: change.OccurredAt,
		}
		if change.DriverID != "" {
			item.DriverId = pointer.ToString(change.DriverID)
		}
		out = append(out, item)
	}

	response.JSON(w, h.log, http.StatusOK, out)
}
