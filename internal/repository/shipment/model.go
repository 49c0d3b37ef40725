package shipment

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

type ShipmentDB struct {
	ID             int64
	Title          string
	Description    *string
	WeightKg       float64
	VolumeM3       *float64
	PickupAddress  string
	PickupLat      float64
	PickupLng      float64
	DropoffAddress string
	DropoffLat     float64
	DropoffLng     float64
	EarliestPickup *time.Time
	LatestDelivery *time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ShipmentModifyDB struct {
	ID             *int64
	Title          *string
	Description    *string
	WeightKg       *float64
	VolumeM3       *float64
	PickupAddress  *string
	PickupLat      *float64
	PickupLng      *float64
	DropoffAddress *string
	DropoffLat     *float64
	DropoffLng     *float64
	EarliestPickup *time.Time
	LatestDelivery *time.Time
	Status         *string
}
