package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/dto"
	"fastship/internal/entities"
	"fastship/internal/service/shipment"
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
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentModifyEntity := entities.ShipmentModify{
		Title:          &shipmentCreateDTO.Title,
		Description:    shipmentCreateDTO.Description,
		WeightKg:       &shipmentCreateDTO.WeightKg,
		VolumeM3:       shipmentCreateDTO.VolumeM3,
		PickupAddress:  &shipmentCreateDTO.PickupAddress,
		PickupLat:      &shipmentCreateDTO.PickupLat,
		PickupLng:      &shipmentCreateDTO.PickupLng,
		DropoffAddress: &shipmentCreateDTO.DropoffAddress,
		DropoffLat:     &shipmentCreateDTO.DropoffLat,
		DropoffLng:     &shipmentCreateDTO.DropoffLng,
		EarliestPickup: shipmentCreateDTO.EarliestPickup,
		LatestDelivery: shipmentCreateDTO.LatestDelivery,
	}

	created, err := h.service.CreateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidTitle),
			errors.Is(err, shipment.ErrInvalidWeight),
			errors.Is(err, shipment.ErrInvalidVolume),
			errors.Is(err, shipment.ErrInvalidCoordinates),
			errors.Is(err, shipment.ErrInvalidTimeWindow):
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
