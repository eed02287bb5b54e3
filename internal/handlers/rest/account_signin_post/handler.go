package account_signin_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/account"
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
	var signInDTO dto.AccountSignIn
	err := json.NewDecoder(r.Body).Decode(&signInDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "request body must be JSON with email and password")
		return
	}

	session, err := h.service.SignIn(r.Context(), signInDTO.Email, signInDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidCredentials):
			response.Error(w, h.log, http.StatusUnauthorized, "invalid email or password")
		default:
			response.Failure(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.Session(*session))
}
