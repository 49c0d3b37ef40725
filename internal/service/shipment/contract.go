//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"fastship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
