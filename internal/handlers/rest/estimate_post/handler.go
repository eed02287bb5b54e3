package estimate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/estimator"
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
	var estimateDTO dto.EstimateRequest
	err := json.NewDecoder(r.Body).Decode(&estimateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "request body must be JSON with pickup and dropoff")
		return
	}

	vehicleType := entities.DefaultVehicleType
	if estimateDTO.VehicleType != nil {
		vehicleType = entities.VehicleType(*estimateDTO.VehicleType)
	}
	if !vehicleType.IsValid() {
		response.Error(w, h.log, http.StatusBadRequest, "vehicle type must be one of car, van, truck")
		return
	}

	estimate, err := h.service.Estimate(r.Context(), estimateDTO.Pickup, estimateDTO.Dropoff, vehicleType)
	if err != nil {
		writeEstimateError(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.Estimate{
		Cost:       estimate.Cost.StringFixed(2),
		TripTime:   estimate.TripTimeMinutes,
		DistanceKm: estimate.DistanceKm,
	})
}

func writeEstimateError(w http.ResponseWriter, log handlerLogger, err error) {
	switch {
	case errors.Is(err, estimator.ErrMissingAddress):
		response.Error(w, log, http.StatusBadRequest, "pickup and dropoff addresses are required")
	case errors.Is(err, estimator.ErrAddressNotFound):
		response.Error(w, log, http.StatusUnprocessableEntity, "address not found, check pickup and dropoff")
	case errors.Is(err, estimator.ErrNoRoute):
		response.Error(w, log, http.StatusUnprocessableEntity, "no driving route between pickup and dropoff")
	case errors.Is(err, estimator.ErrNetwork):
		response.Error(w, log, http.StatusServiceUnavailable, "geocoding or routing service unreachable, try again later")
	default:
		response.Failure(w, log, err)
	}
}
