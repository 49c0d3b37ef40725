//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_test
package transition

import (
	"context"

	"fastship/internal/entities"
	"fastship/internal/service/lifecycle"
)

type ShipmentService interface {
	ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Shipment, error)
}

type TripService interface {
	ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Trip, error)
}

type OfferService interface {
	ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Offer, error)
}

type BookingService interface {
	ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Booking, error)
}
