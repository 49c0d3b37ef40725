package shipment_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastship/internal/dto"
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

	shipmentEntity, err := h.service.GetShipment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	shipmentDTO := dto.Shipment{
		ID:             shipmentEntity.ID,
		Title:          shipmentEntity.Title,
		Description:    shipmentEntity.Description,
		WeightKg:       shipmentEntity.WeightKg,
		VolumeM3:       shipmentEntity.VolumeM3,
		PickupAddress:  shipmentEntity.PickupAddress,
		PickupLat:      shipmentEntity.PickupLat,
		PickupLng:      shipmentEntity.PickupLng,
		DropoffAddress: shipmentEntity.DropoffAddress,
		DropoffLat:     shipmentEntity.DropoffLat,
		DropoffLng:     shipmentEntity.DropoffLng,
		EarliestPickup: shipmentEntity.EarliestPickup,
		LatestDelivery: shipmentEntity.LatestDelivery,
		Status:         shipmentEntity.Status.String(),
		CreatedAt:      shipmentEntity.CreatedAt,
		UpdatedAt:      shipmentEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
