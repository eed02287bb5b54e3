package admin_overview_get

import (
	"net/http"

	"logistics/internal/generated/dto"
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
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		response.Failure(w, h.log, err)
		return
	}

	out := dto.Overview{
		AccountsByRole:   make(map[string]int64, len(overview.AccountsByRole)),
		BookingsByStatus: make(map[string]int64, len(overview.BookingsByStatus)),
		TotalBookings:    overview.TotalBookings,
	}
	for role, count := range overview.AccountsByRole {
		out.AccountsByRole[role.String()] = count
	}
	for status, count := range overview.BookingsByStatus {
		out.BookingsByStatus[status.String()] = count
	}

	response.JSON(w, h.log, http.StatusOK, out)
}
