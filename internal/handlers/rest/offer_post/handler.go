package offer_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/dto"
	"fastship/internal/entities"
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
	var offerCreateDTO dto.OfferCreate
	err := json.NewDecoder(r.Body).Decode(&offerCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offerModifyEntity := entities.OfferModify{
		ShipmentID:  &offerCreateDTO.ShipmentID,
		TripID:      &offerCreateDTO.TripID,
		PriceAmount: &offerCreateDTO.PriceAmount,
		Currency:    offerCreateDTO.Currency,
		Note:        offerCreateDTO.Note,
	}

	created, err := h.service.CreateOffer(r.Context(), offerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrMissingRequiredFields),
			errors.Is(err, offer.ErrInvalidPrice),
			errors.Is(err, offer.ErrInvalidCurrency):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, trip.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, offer.ErrActiveOfferExists):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
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
