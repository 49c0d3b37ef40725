package offer_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastship/internal/dto"
	"fastship/internal/handlers/rest/offer_get"
	"fastship/internal/service/lifecycle"
	"fastship/internal/service/offer"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusUpdateDTO dto.OfferStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.ApplyEvent(r.Context(), id, lifecycle.Event(statusUpdateDTO.Event))
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, offer.ErrInvalidOfferID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	offerDTO := offer_get.ToOfferDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(offerDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
