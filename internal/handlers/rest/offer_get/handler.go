package offer_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastship/internal/dto"
	"fastship/internal/entities"
	"fastship/internal/service/offer"
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

	offerEntity, err := h.service.GetOffer(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, offer.ErrInvalidOfferID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	offerDTO := ToOfferDTO(offerEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(offerDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// ToOfferDTO также используется обработчиком смены статуса оффера.
func ToOfferDTO(offerEntity *entities.Offer) dto.Offer {
	return dto.Offer{
		ID:          offerEntity.ID,
		ShipmentID:  offerEntity.ShipmentID,
		TripID:      offerEntity.TripID,
		PriceAmount: offerEntity.PriceAmount,
		Currency:    offerEntity.Currency,
		Note:        offerEntity.Note,
		Status:      offerEntity.Status.String(),
		CreatedAt:   offerEntity.CreatedAt,
		UpdatedAt:   offerEntity.UpdatedAt,
	}
}
