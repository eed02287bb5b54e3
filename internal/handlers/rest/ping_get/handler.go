package ping_get

import (
	"net/http"

	"github.com/AlekSi/pointer"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: pointer.ToString("pong"),
	})
}
