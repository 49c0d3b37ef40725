package trip

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

type TripDB struct {
	ID                 int64
	Mode               string
	VehicleType        *string
	OriginAddress      string
	OriginLat          float64
	OriginLng          float64
	DestinationAddress string
	DestinationLat     float64
	DestinationLng     float64
	CapacityKg         float64
	CapacityM3         *float64
	CommittedWeightKg  float64
	CommittedVolumeM3  float64
	DepartureTime      *time.Time
	ArrivalTime        *time.Time
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type TripModifyDB struct {
	ID                 *int64
	Mode               *string
	VehicleType        *string
	OriginAddress      *string
	OriginLat          *float64
	OriginLng          *float64
	DestinationAddress *string
	DestinationLat     *float64
	DestinationLng     *float64
	CapacityKg         *float64
	CapacityM3         *float64
	DepartureTime      *time.Time
	ArrivalTime        *time.Time
	Status             *string
}
