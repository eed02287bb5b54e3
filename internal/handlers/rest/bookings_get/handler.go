package bookings_get

import (
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/auth"
)

// Handler отдает заказы текущего аккаунта: заказчику созданные им, водителю принятые им,
// админу все.
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

	var (
		bookings []entities.Booking
		err      error
	)
	switch actor.Role {
	case entities.RoleUser:
		bookings, err = h.service.ListByUser(r.Context(), actor.AccountID)
	case entities.RoleDriver:
		bookings, err = h.service.ListByDriver(r.Context(), actor.AccountID)
	case entities.RoleAdmin:
		bookings, err = h.service.ListAll(r.Context())
	default:
		response.Error(w, h.log, http.StatusForbidden, "role has no bookings")
		return
	}
	if err != nil {
		response.Failure(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Bookings(bookings))
}
