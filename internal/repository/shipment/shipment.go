package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastship/internal/entities"
	"fastship/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const shipmentColumns = `id, title, description, weight_kg, volume_m3,
	pickup_address, pickup_lat, pickup_lng,
	dropoff_address, dropoff_lat, dropoff_lng,
	earliest_pickup, latest_delivery, status, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)
	query := `INSERT INTO shipments (title, description, weight_kg, volume_m3,
			pickup_address, pickup_lat, pickup_lng,
			dropoff_address, dropoff_lat, dropoff_lng,
			earliest_pickup, latest_delivery, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.Title,
		shipmentModifyModel.Description,
		shipmentModifyModel.WeightKg,
		shipmentModifyModel.VolumeM3,
		shipmentModifyModel.PickupAddress,
		shipmentModifyModel.PickupLat,
		shipmentModifyModel.PickupLng,
		shipmentModifyModel.DropoffAddress,
		shipmentModifyModel.DropoffLat,
		shipmentModifyModel.DropoffLng,
		shipmentModifyModel.EarliestPickup,
		shipmentModifyModel.LatestDelivery,
		shipmentModifyModel.Status,
	).Scan(
		&shipmentModel.ID,
		&shipmentModel.Title,
		&shipmentModel.Description,
		&shipmentModel.WeightKg,
		&shipmentModel.VolumeM3,
		&shipmentModel.PickupAddress,
		&shipmentModel.PickupLat,
		&shipmentModel.PickupLng,
		&shipmentModel.DropoffAddress,
		&shipmentModel.DropoffLat,
		&shipmentModel.DropoffLng,
		&shipmentModel.EarliestPickup,
		&shipmentModel.LatestDelivery,
		&shipmentModel.Status,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.Title,
			&shipmentModel.Description,
			&shipmentModel.WeightKg,
			&shipmentModel.VolumeM3,
			&shipmentModel.PickupAddress,
			&shipmentModel.PickupLat,
			&shipmentModel.PickupLng,
			&shipmentModel.DropoffAddress,
			&shipmentModel.DropoffLat,
			&shipmentModel.DropoffLng,
			&shipmentModel.EarliestPickup,
			&shipmentModel.LatestDelivery,
			&shipmentModel.Status,
			&shipmentModel.CreatedAt,
			&shipmentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	// опциональные поля
	if shipmentModifyModel.Title != nil {
		builder = builder.Set("title", shipmentModifyModel.Title)
	}
	if shipmentModifyModel.Description != nil {
		builder = builder.Set("description", shipmentModifyModel.Description)
	}
	if shipmentModifyModel.WeightKg != nil {
		builder = builder.Set("weight_kg", shipmentModifyModel.WeightKg)
	}
	if shipmentModifyModel.VolumeM3 != nil {
		builder = builder.Set("volume_m3", shipmentModifyModel.VolumeM3)
	}
	if shipmentModifyModel.EarliestPickup != nil {
		builder = builder.Set("earliest_pickup", shipmentModifyModel.EarliestPickup)
	}
	if shipmentModifyModel.LatestDelivery != nil {
		builder = builder.Set("latest_delivery", shipmentModifyModel.LatestDelivery)
	}
	if shipmentModifyModel.Status != nil {
		builder = builder.Set("status", shipmentModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyModel.ID}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.Title,
			&shipmentModel.Description,
			&shipmentModel.WeightKg,
			&shipmentModel.VolumeM3,
			&shipmentModel.PickupAddress,
			&shipmentModel.PickupLat,
			&shipmentModel.PickupLng,
			&shipmentModel.DropoffAddress,
			&shipmentModel.DropoffLat,
			&shipmentModel.DropoffLng,
			&shipmentModel.EarliestPickup,
			&shipmentModel.LatestDelivery,
			&shipmentModel.Status,
			&shipmentModel.CreatedAt,
			&shipmentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}
