package transition

import (
	"context"

	"fastship/internal/service/lifecycle"
)

// Transition - единая точка применения событий жизненного цикла:
// диспетчеризует событие сервису соответствующей сущности.
type Transition struct {
	shipmentService ShipmentService
	tripService     TripService
	offerService    OfferService
	bookingService  BookingService
}

func New(
	shipmentService ShipmentService,
	tripService TripService,
	offerService OfferService,
	bookingService BookingService,
) *Transition {
	return &Transition{
		shipmentService: shipmentService,
		tripService:     tripService,
		offerService:    offerService,
		bookingService:  bookingService,
	}
}

// Result - статус сущности после применения события.
type Result struct {
	EntityType lifecycle.EntityType
	EntityID   int64
	Status     string
}

func (s *Transition) ApplyTransition(ctx context.Context, entityType lifecycle.EntityType, id int64, event lifecycle.Event) (*Result, error) {
	switch entityType {
	case lifecycle.EntityShipment:
		updated, err := s.shipmentService.ApplyEvent(ctx, id, event)
		if err != nil {
			return nil, err
		}
		return &Result{EntityType: entityType, EntityID: updated.ID, Status: updated.Status.String()}, nil
	case lifecycle.EntityTrip:
		updated, err := s.tripService.ApplyEvent(ctx, id, event)
		if err != nil {
			return nil, err
		}
		return &Result{EntityType: entityType, EntityID: updated.ID, Status: updated.Status.String()}, nil
	case lifecycle.EntityOffer:
		updated, err := s.offerService.ApplyEvent(ctx, id, event)
		if err != nil {
			return nil, err
		}
		return &Result{EntityType: entityType, EntityID: updated.ID, Status: updated.Status.String()}, nil
	case lifecycle.EntityBooking:
		updated, err := s.bookingService.ApplyEvent(ctx, id, event)
		if err != nil {
			return nil, err
		}
		return &Result{EntityType: entityType, EntityID: updated.ID, Status: updated.Status.String()}, nil
	default:
		return nil, lifecycle.ErrUnknownEntityType
	}
}
