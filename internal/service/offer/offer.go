package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastship/internal/entities"
	"fastship/internal/service/booking"
	"fastship/internal/service/lifecycle"
)

type Offer struct {
	repository      Repository
	shipmentService ShipmentService
	tripService     TripService
	bookingProvider BookingProvider
	txManager       TxManager
	pendingTTL      time.Duration
}

func New(
	repository Repository,
	shipmentService ShipmentService,
	tripService TripService,
	bookingProvider BookingProvider,
	txManager TxManager,
	pendingTTL time.Duration,
) *Offer {
	return &Offer{
		repository:      repository,
		shipmentService: shipmentService,
		tripService:     tripService,
		bookingProvider: bookingProvider,
		txManager:       txManager,
		pendingTTL:      pendingTTL,
	}
}

func (s *Offer) CreateOffer(ctx context.Context, offerModify entities.OfferModify) (*entities.Offer, error) {
	if offerModify.ShipmentID == nil ||
		offerModify.TripID == nil ||
		offerModify.PriceAmount == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidID(*offerModify.ShipmentID) || !isValidID(*offerModify.TripID) {
		return nil, ErrMissingRequiredFields
	}
	if *offerModify.PriceAmount <= 0 {
		return nil, ErrInvalidPrice
	}

	if offerModify.Currency == nil {
		defaultCurrency := entities.DefaultCurrency
		offerModify.Currency = &defaultCurrency
	}
	if !isValidCurrency(*offerModify.Currency) {
		return nil, ErrInvalidCurrency
	}

	initialStatus := entities.OfferPending
	offerModify.Status = &initialStatus

	var created *entities.Offer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// ссылочная целостность проверяется до вставки, чтобы отдавать
		// осмысленный not found вместо ошибки внешнего ключа
		if _, err := s.shipmentService.GetShipment(ctx, *offerModify.ShipmentID); err != nil {
			return fmt.Errorf("check shipment: %w", err)
		}
		if _, err := s.tripService.GetTrip(ctx, *offerModify.TripID); err != nil {
			return fmt.Errorf("check trip: %w", err)
		}

		var err error
		created, err = s.repository.Create(ctx, offerModify)
		if err != nil {
			return fmt.Errorf("create offer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Offer) GetOffer(ctx context.Context, id int64) (*entities.Offer, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOfferID
	}

	offerEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}

	return offerEntity, nil
}

// AcceptOffer принимает оффер и в той же транзакции переводит груз
// в статус matched. Если груз уже сматчен другим оффером, транзакция
// откатывается целиком.
func (s *Offer) AcceptOffer(ctx context.Context, id int64) (*entities.Offer, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOfferID
	}

	var updated *entities.Offer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}

		nextStatus, err := lifecycle.ApplyOffer(current.Status, lifecycle.EventAccept)
		if err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, entities.OfferModify{
			ID:     &current.ID,
			Status: &nextStatus,
		})
		if err != nil {
			return fmt.Errorf("update offer status: %w", err)
		}

		_, err = s.shipmentService.ApplyEvent(ctx, current.ShipmentID, lifecycle.EventOfferAccepted)
		if err != nil {
			return fmt.Errorf("match shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Offer) RejectOffer(ctx context.Context, id int64) (*entities.Offer, error) {
	return s.applyStatusEvent(ctx, id, lifecycle.EventReject)
}

func (s *Offer) CancelOffer(ctx context.Context, id int64) (*entities.Offer, error) {
	return s.applyStatusEvent(ctx, id, lifecycle.EventCancel)
}

// ApplyEvent выполняет событие жизненного цикла оффера.
func (s *Offer) ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Offer, error) {
	switch event {
	case lifecycle.EventAccept:
		return s.AcceptOffer(ctx, id)
	case lifecycle.EventReject, lifecycle.EventCancel:
		return s.applyStatusEvent(ctx, id, event)
	default:
		return nil, lifecycle.ErrInvalidTransition
	}
}

// ExpireStaleOffers отменяет pending-офферы старше настроенного TTL.
// Возвращает количество отмененных офферов.
func (s *Offer) ExpireStaleOffers(ctx context.Context) (int64, error) {
	cancelled, err := s.repository.CancelStalePending(ctx, s.pendingTTL)
	if err != nil {
		return 0, fmt.Errorf("expire stale offers: %w", err)
	}
	return cancelled, nil
}

func (s *Offer) applyStatusEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Offer, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOfferID
	}

	var updated *entities.Offer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}

		nextStatus, err := lifecycle.ApplyOffer(current.Status, event)
		if err != nil {
			return err
		}

		// принятый оффер, по которому живо бронирование, считается
		// израсходованным: отменять нужно само бронирование
		if event == lifecycle.EventCancel && current.Status == entities.OfferAccepted {
			existing, err := s.bookingProvider.GetByOfferID(ctx, current.ID)
			switch {
			case err == nil && existing.Status != entities.BookingCancelled:
				return lifecycle.ErrInvalidTransition
			case err != nil && !errors.Is(err, booking.ErrBookingNotFound):
				return fmt.Errorf("check booking: %w", err)
			}
		}

		updated, err = s.repository.Update(ctx, entities.OfferModify{
			ID:     &current.ID,
			Status: &nextStatus,
		})
		if err != nil {
			return fmt.Errorf("update offer status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
