//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"fastship/internal/entities"
)

type ShipmentProvider interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
}

type TripProvider interface {
	GetByStatus(ctx context.Context, status entities.TripStatusType) ([]entities.Trip, error)
}
