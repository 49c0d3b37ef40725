package booking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/dto"
	"fastship/internal/entities"
	"fastship/internal/service/booking"
	"fastship/internal/service/lifecycle"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var bookingCreateDTO dto.BookingCreate
	err := json.NewDecoder(r.Body).Decode(&bookingCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingModifyEntity := entities.BookingModify{
		OfferID:     &bookingCreateDTO.OfferID,
		TotalAmount: bookingCreateDTO.TotalAmount,
		Currency:    bookingCreateDTO.Currency,
	}

	created, err := h.service.CreateBooking(r.Context(), bookingModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidOfferID),
			errors.Is(err, booking.ErrInvalidAmount),
			errors.Is(err, booking.ErrInvalidCurrency):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, offer.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, booking.ErrOfferNotAccepted),
			errors.Is(err, lifecycle.ErrInvalidTransition):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, booking.ErrAlreadyBooked),
			errors.Is(err, booking.ErrCapacityExceeded):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, booking.ErrBusy):
			// конкурентный конфликт, клиенту имеет смысл повторить
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	bookingDTO := ToBookingDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(bookingDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// ToBookingDTO также используется обработчиками получения и отмены бронирования.
func ToBookingDTO(bookingEntity *entities.Booking) dto.Booking {
	return dto.Booking{
		ID:          bookingEntity.ID,
		OfferID:     bookingEntity.OfferID,
		TotalAmount: bookingEntity.TotalAmount,
		Currency:    bookingEntity.Currency,
		Status:      bookingEntity.Status.String(),
		CreatedAt:   bookingEntity.CreatedAt,
		UpdatedAt:   bookingEntity.UpdatedAt,
	}
}
