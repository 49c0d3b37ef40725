package trip_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/dto"
	"fastship/internal/entities"
	"fastship/internal/service/trip"
	"fastship/pkg/logger"
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
	var tripCreateDTO dto.TripCreate
	err := json.NewDecoder(r.Body).Decode(&tripCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modeType := entities.TransportModeType(tripCreateDTO.Mode)
	tripModifyEntity := entities.TripModify{
		Mode:               &modeType,
		VehicleType:        tripCreateDTO.VehicleType,
		OriginAddress:      &tripCreateDTO.OriginAddress,
		OriginLat:          &tripCreateDTO.OriginLat,
		OriginLng:          &tripCreateDTO.OriginLng,
		DestinationAddress: &tripCreateDTO.DestinationAddress,
		DestinationLat:     &tripCreateDTO.DestinationLat,
		DestinationLng:     &tripCreateDTO.DestinationLng,
		CapacityKg:         &tripCreateDTO.CapacityKg,
		CapacityM3:         tripCreateDTO.CapacityM3,
		DepartureTime:      tripCreateDTO.DepartureTime,
		ArrivalTime:        tripCreateDTO.ArrivalTime,
	}

	created, err := h.service.CreateTrip(r.Context(), tripModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrMissingRequiredFields),
			errors.Is(err, trip.ErrInvalidMode),
			errors.Is(err, trip.ErrInvalidCapacity),
			errors.Is(err, trip.ErrInvalidCoordinates),
			errors.Is(err, trip.ErrInvalidTimeWindow):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateResponse{
		ID: created.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
