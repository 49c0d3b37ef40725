package matches_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastship/internal/dto"
	"fastship/internal/handlers/rest/trip_get"
	"fastship/internal/service/matching"
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
	idStr := mux.Vars(r)["id"]
	shipmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	matches, err := h.service.Rank(r.Context(), shipmentID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, matching.ErrInvalidShipmentID),
			errors.Is(err, shipment.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	matchDTOs := make([]dto.TripMatch, 0, len(matches))
	for _, match := range matches {
		matchDTOs = append(matchDTOs, dto.TripMatch{
			Trip:       trip_get.ToTripDTO(&match.Trip),
			DistanceKm: match.DistanceKm,
		})
	}

	response := dto.MatchesResponse{
		ShipmentID: shipmentID,
		Matches:    matchDTOs,
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
