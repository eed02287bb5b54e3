package booking_tracking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"logistics/internal/entities"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/auth"
	"logistics/internal/service/booking"
	"logistics/internal/service/tracking"
	"logistics/pkg/logger"
)

const writeWait = 10 * time.Second

// Handler пушит наблюдателю состояние заказа с позицией водителя,
// пока заказ не доставлен или клиент не отключился.
type Handler struct {
	log      handlerLogger
	bookings BookingService
	follower *tracking.Follower
	upgrader websocket.Upgrader
}

func New(log handlerLogger, bookings BookingService, interval time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ws_booking_tracking"))

	return &Handler{
		log:      handlerLog,
		bookings: bookings,
		follower: tracking.NewFollower(bookings, handlerLog, interval),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, "sign in required")
		return
	}

	bookingID := mux.Vars(r)["id"]
	current, err := h.bookings.GetBooking(r.Context(), bookingID)
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
	if !current.VisibleTo(actor) {
		response.Error(w, h.log, http.StatusNotFound, "booking not found")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", logger.NewField("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// клиент ничего не шлет, чтение нужно чтобы заметить закрытие сокета
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	err = h.follower.Follow(ctx, bookingID, func(b entities.Booking) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(response.Booking(b))
	})

	closeCode, reason := websocket.CloseNormalClosure, "booking delivered"
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		h.log.Warn("booking tracking stopped", logger.NewField("booking", bookingID), logger.NewField("error", err))
		closeCode, reason = websocket.CloseInternalServerErr, "tracking stopped"
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(closeCode, reason),
		time.Now().Add(writeWait))
}
