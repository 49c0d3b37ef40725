package transition_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/dto"
	"fastship/internal/service/booking"
	"fastship/internal/service/lifecycle"
	"fastship/internal/service/offer"
	"fastship/internal/service/shipment"
	"fastship/internal/service/trip"
	"fastship/pkg/logger"
	"fastship/pkg/tx"
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
	var transitionDTO dto.TransitionRequest
	err := json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.ApplyTransition(
		r.Context(),
		lifecycle.EntityType(transitionDTO.EntityType),
		transitionDTO.EntityID,
		lifecycle.Event(transitionDTO.Event),
	)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrUnknownEntityType),
			errors.Is(err, shipment.ErrInvalidShipmentID),
			errors.Is(err, trip.ErrInvalidTripID),
			errors.Is(err, offer.ErrInvalidOfferID),
			errors.Is(err, booking.ErrInvalidBookingID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, trip.ErrTripNotFound),
			errors.Is(err, offer.ErrOfferNotFound),
			errors.Is(err, booking.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, booking.ErrBusy),
			errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TransitionResponse{
		EntityType: result.EntityType.String(),
		EntityID:   result.EntityID,
		Status:     result.Status,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
