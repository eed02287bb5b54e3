package driver_location

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/auth"
	"logistics/internal/service/tracking"
	"logistics/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Handler принимает от устройства водителя поток координат и пока сокет открыт
// раз в interval пишет последнюю позицию во все активные заказы водителя.
type Handler struct {
	log        handlerLogger
	bookings   BookingService
	interval   time.Duration
	staleAfter time.Duration
	upgrader   websocket.Upgrader
}

func New(log handlerLogger, bookings BookingService, interval, staleAfter time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ws_driver_location"))

	return &Handler{
		log:        handlerLog,
		bookings:   bookings,
		interval:   interval,
		staleAfter: staleAfter,
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

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам ответил клиенту
		h.log.Debug("websocket upgrade failed", logger.NewField("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	position := tracking.NewLatestPosition(h.staleAfter)
	broadcaster := tracking.NewBroadcaster(actor.AccountID, position, h.bookings, h.log, h.interval)
	if err := broadcaster.Start(ctx); err != nil {
		h.log.Error("start location broadcast", logger.NewField("error", err))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "location broadcast unavailable"),
			time.Now().Add(writeWait))
		return
	}
	defer broadcaster.Stop()

	go h.keepAlive(ctx, conn)

	h.log.Info("driver connected", logger.NewField("driver", actor.AccountID))
	h.readPositions(conn, position)
	h.log.Info("driver disconnected", logger.NewField("driver", actor.AccountID))
}

func (h *Handler) readPositions(conn *websocket.Conn, position *tracking.LatestPosition) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var message dto.Location
		err := conn.ReadJSON(&message)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read", logger.NewField("error", err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		location := entities.Location{
			Latitude:  message.Latitude,
			Longitude: message.Longitude,
		}
		if location.Latitude < -90 || location.Latitude > 90 ||
			location.Longitude < -180 || location.Longitude > 180 {
			h.log.Debug("position out of range, ignored")
			continue
		}
		position.Set(location)
	}
}

// keepAlive единственный писатель в сокет.
func (h *Handler) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// разблокирует ReadJSON при остановке сервера
			_ = conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
