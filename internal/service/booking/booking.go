package booking

import (
	"context"
	"errors"
	"fmt"

	"fastship/internal/entities"
	"fastship/internal/service/lifecycle"
	"fastship/pkg/tx"
)

// Booking координирует бронирование: проверка оффера, фиксация емкости
// рейса, создание записи бронирования и перевод груза в booked выполняются
// в одной транзакции.
type Booking struct {
	repository      Repository
	tripRepository  TripRepository
	offerService    OfferService
	shipmentService ShipmentService
	txManager       TxManager
}

func New(
	repository Repository,
	tripRepository TripRepository,
	offerService OfferService,
	shipmentService ShipmentService,
	txManager TxManager,
) *Booking {
	return &Booking{
		repository:      repository,
		tripRepository:  tripRepository,
		offerService:    offerService,
		shipmentService: shipmentService,
		txManager:       txManager,
	}
}

// CreateBooking создает бронирование по принятому офферу. Сумма и валюта
// берутся из оффера, если не переданы явно. Конфликт сериализации
// транслируется в ErrBusy: клиент может повторить запрос.
func (s *Booking) CreateBooking(ctx context.Context, bookingModify entities.BookingModify) (*entities.Booking, error) {
	if bookingModify.OfferID == nil || *bookingModify.OfferID <= 0 {
		return nil, ErrInvalidOfferID
	}
	if bookingModify.TotalAmount != nil && *bookingModify.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if bookingModify.Currency != nil && !isValidCurrency(*bookingModify.Currency) {
		return nil, ErrInvalidCurrency
	}

	var created *entities.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		offerEntity, err := s.offerService.GetOffer(ctx, *bookingModify.OfferID)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}
		if offerEntity.Status != entities.OfferAccepted {
			return ErrOfferNotAccepted
		}

		shipmentEntity, err := s.shipmentService.GetShipment(ctx, offerEntity.ShipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		err = s.tripRepository.ReserveCapacity(ctx, offerEntity.TripID, shipmentEntity.WeightKg, shipmentEntity.VolumeM3)
		if err != nil {
			return fmt.Errorf("reserve trip capacity: %w", err)
		}

		if bookingModify.TotalAmount == nil {
			bookingModify.TotalAmount = &offerEntity.PriceAmount
		}
		if bookingModify.Currency == nil {
			bookingModify.Currency = &offerEntity.Currency
		}
		initialStatus := entities.BookingReserved
		bookingModify.Status = &initialStatus

		created, err = s.repository.Create(ctx, bookingModify)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		_, err = s.shipmentService.ApplyEvent(ctx, offerEntity.ShipmentID, lifecycle.EventBookingConfirmed)
		if err != nil {
			return fmt.Errorf("book shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapSerialization(err)
	}
	return created, nil
}

func (s *Booking) GetBooking(ctx context.Context, id int64) (*entities.Booking, error) {
	if id <= 0 {
		return nil, ErrInvalidBookingID
	}

	bookingEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return bookingEntity, nil
}

// CancelBooking отменяет бронирование и возвращает зафиксированную емкость
// рейсу. Повторная отмена идемпотентна: уже отмененное бронирование
// возвращается как есть, емкость второй раз не освобождается.
func (s *Booking) CancelBooking(ctx context.Context, id int64) (*entities.Booking, error) {
	if id <= 0 {
		return nil, ErrInvalidBookingID
	}

	var cancelled *entities.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		if current.Status == entities.BookingCancelled {
			cancelled = current
			return nil
		}

		nextStatus, err := lifecycle.ApplyBooking(current.Status, lifecycle.EventCancel)
		if err != nil {
			return err
		}

		cancelled, err = s.repository.UpdateStatus(ctx, current.ID, nextStatus)
		if err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}

		offerEntity, err := s.offerService.GetOffer(ctx, current.OfferID)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}
		shipmentEntity, err := s.shipmentService.GetShipment(ctx, offerEntity.ShipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		err = s.tripRepository.ReleaseCapacity(ctx, offerEntity.TripID, shipmentEntity.WeightKg, shipmentEntity.VolumeM3)
		if err != nil {
			return fmt.Errorf("release trip capacity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapSerialization(err)
	}
	return cancelled, nil
}

// ConfirmBooking переводит бронирование в confirmed по факту оплаты.
func (s *Booking) ConfirmBooking(ctx context.Context, id int64) (*entities.Booking, error) {
	return s.applyStatusEvent(ctx, id, lifecycle.EventPaymentCaptured)
}

// ApplyEvent выполняет событие жизненного цикла бронирования.
func (s *Booking) ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Booking, error) {
	if event == lifecycle.EventCancel {
		return s.CancelBooking(ctx, id)
	}
	return s.applyStatusEvent(ctx, id, event)
}

func (s *Booking) applyStatusEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Booking, error) {
	if id <= 0 {
		return nil, ErrInvalidBookingID
	}

	var updated *entities.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}

		nextStatus, err := lifecycle.ApplyBooking(current.Status, event)
		if err != nil {
			return err
		}

		updated, err = s.repository.UpdateStatus(ctx, current.ID, nextStatus)
		if err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapSerialization(err)
	}
	return updated, nil
}

func wrapSerialization(err error) error {
	if errors.Is(err, tx.ErrSerialization) {
		return errors.Join(ErrBusy, err)
	}
	return err
}

func isValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
