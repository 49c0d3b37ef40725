package offer

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type OfferDB struct {
	ID          int64
	ShipmentID  int64
	TripID      int64
	PriceAmount int64
	Currency    string
	Note        *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OfferModifyDB struct {
	ID          *int64
	ShipmentID  *int64
	TripID      *int64
	PriceAmount *int64
	Currency    *string
	Note        *string
	Status      *string
}
