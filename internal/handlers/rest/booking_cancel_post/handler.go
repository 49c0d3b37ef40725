package booking_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fastship/internal/handlers/rest/booking_post"
	"fastship/internal/service/booking"
	"fastship/internal/service/lifecycle"
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
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cancelled, err := h.service.CancelBooking(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrInvalidBookingID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, booking.ErrBusy):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	bookingDTO := booking_post.ToBookingDTO(cancelled)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(bookingDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
