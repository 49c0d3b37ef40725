//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"fastship/internal/entities"
	"fastship/internal/service/lifecycle"
)

type Repository interface {
	Create(ctx context.Context, bookingModifyEntity entities.BookingModify) (*entities.Booking, error)
	GetByID(ctx context.Context, id int64) (*entities.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BookingStatusType) (*entities.Booking, error)
}

type TripRepository interface {
	// ReserveCapacity прибавляет вес и объем к зафиксированной емкости рейса
	// при условии, что остаток позволяет. Возвращает ErrCapacityExceeded,
	// если не позволяет.
	ReserveCapacity(ctx context.Context, tripID int64, weightKg float64, volumeM3 *float64) error
	ReleaseCapacity(ctx context.Context, tripID int64, weightKg float64, volumeM3 *float64) error
}

type OfferService interface {
	GetOffer(ctx context.Context, id int64) (*entities.Offer, error)
}

type ShipmentService interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
	ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
