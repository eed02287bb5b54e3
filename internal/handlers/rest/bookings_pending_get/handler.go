package bookings_pending_get

import (
	"net/http"

	"logistics/internal/handlers/rest/response"
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
	bookings, err := h.service.ListPending(r.Context())
	if err != nil {
		response.Failure(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Bookings(bookings))
}
