//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"

	"fastship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error)
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
	GetByStatus(ctx context.Context, status entities.TripStatusType) ([]entities.Trip, error)
	Update(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
