package trip_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tripEntity, err := h.service.GetTrip(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, trip.ErrInvalidTripID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	tripDTO := ToTripDTO(tripEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(tripDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// ToTripDTO также используется выдачей кандидатов в matches_get.
func ToTripDTO(tripEntity *entities.Trip) dto.Trip {
	return dto.Trip{
		ID:                 tripEntity.ID,
		Mode:               tripEntity.Mode.String(),
		VehicleType:        tripEntity.VehicleType,
		OriginAddress:      tripEntity.OriginAddress,
		OriginLat:          tripEntity.OriginLat,
		OriginLng:          tripEntity.OriginLng,
		DestinationAddress: tripEntity.DestinationAddress,
		DestinationLat:     tripEntity.DestinationLat,
		DestinationLng:     tripEntity.DestinationLng,
		CapacityKg:         tripEntity.CapacityKg,
		CapacityM3:         tripEntity.CapacityM3,
		CommittedWeightKg:  tripEntity.CommittedWeightKg,
		CommittedVolumeM3:  tripEntity.CommittedVolumeM3,
		DepartureTime:      tripEntity.DepartureTime,
		ArrivalTime:        tripEntity.ArrivalTime,
		Status:             tripEntity.Status.String(),
		CreatedAt:          tripEntity.CreatedAt,
		UpdatedAt:          tripEntity.UpdatedAt,
	}
}
