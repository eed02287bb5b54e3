package admin_accounts_get

import (
	"errors"
	"net/http"
	"strings"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/account"
)

// Handler список аккаунтов для админа, ?role= сужает до одной роли.
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
	role := entities.AccountRole(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("role"))))

	accounts, err := h.service.ListAccounts(r.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidRole):
			response.Error(w, h.log, http.StatusBadRequest, "role must be one of user, driver, admin")
		default:
			response.Failure(w, h.log, err)
		}
		return
	}

	out := make([]dto.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, response.Account(a))
	}
	response.JSON(w, h.log, http.StatusOK, out)
}
