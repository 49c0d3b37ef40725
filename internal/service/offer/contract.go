//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_test
package offer

import (
	"context"
	"time"

	"fastship/internal/entities"
	"fastship/internal/service/lifecycle"
)

type Repository interface {
	Create(ctx context.Context, offerModifyEntity entities.OfferModify) (*entities.Offer, error)
	GetByID(ctx context.Context, id int64) (*entities.Offer, error)
	Update(ctx context.Context, offerModifyEntity entities.OfferModify) (*entities.Offer, error)

	CancelStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
}

type ShipmentService interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
	ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Shipment, error)
}

type TripService interface {
	GetTrip(ctx context.Context, id int64) (*entities.Trip, error)
}

type BookingProvider interface {
	GetByOfferID(ctx context.Context, offerID int64) (*entities.Booking, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
