package account_register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
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
	var registerDTO dto.AccountRegister
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "request body must be JSON with email and password")
		return
	}

	role := entities.DefaultRole
	if registerDTO.Role != nil {
		role = entities.AccountRole(*registerDTO.Role)
	}

	session, err := h.service.Register(r.Context(), registerDTO.Email, registerDTO.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidEmail),
			errors.Is(err, account.ErrInvalidPassword),
			errors.Is(err, account.ErrInvalidRole):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, account.ErrEmailTaken):
			response.Error(w, h.log, http.StatusConflict, "email already registered, sign in instead")
		case errors.Is(err, account.ErrAdminExists):
			response.Error(w, h.log, http.StatusConflict, "an admin account already exists")
		default:
			response.Failure(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.Session(*session))
}
