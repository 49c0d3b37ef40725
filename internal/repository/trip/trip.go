package trip

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastship/internal/entities"
	"fastship/internal/service/booking"
	"fastship/internal/service/trip"
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

const tripColumns = `id, mode, vehicle_type,
	origin_address, origin_lat, origin_lng,
	destination_address, destination_lat, destination_lng,
	capacity_kg, capacity_m3, committed_weight_kg, committed_volume_m3,
	departure_time, arrival_time, status, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)
	query := `INSERT INTO trips (mode, vehicle_type,
			origin_address, origin_lat, origin_lng,
			destination_address, destination_lat, destination_lng,
			capacity_kg, capacity_m3, departure_time, arrival_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + tripColumns

	var tripModel TripDB
	err := r.querier.QueryRow(
		ctx,
		query,
		tripModifyModel.Mode,
		tripModifyModel.VehicleType,
		tripModifyModel.OriginAddress,
		tripModifyModel.OriginLat,
		tripModifyModel.OriginLng,
		tripModifyModel.DestinationAddress,
		tripModifyModel.DestinationLat,
		tripModifyModel.DestinationLng,
		tripModifyModel.CapacityKg,
		tripModifyModel.CapacityM3,
		tripModifyModel.DepartureTime,
		tripModifyModel.ArrivalTime,
		tripModifyModel.Status,
	).Scan(r.scanDest(&tripModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return ToDomain(&tripModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1`

	var tripModel TripDB
	err := r.querier.QueryRow(ctx, query, id).Scan(r.scanDest(&tripModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		return nil, fmt.Errorf("unexpected trip repository getbyid error: %w", err)
	}

	return ToDomain(&tripModel), nil
}

func (r *Repository) GetByStatus(ctx context.Context, status entities.TripStatusType) ([]entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE status = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getbystatus error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 8)
	for rows.Next() {
		var tripModel TripDB
		err := rows.Scan(r.scanDest(&tripModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository getbystatus error: %w", err)
		}
		tripModels = append(tripModels, tripModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getbystatus error: %w", err)
	}

	return ToDomainList(tripModels), nil
}

func (r *Repository) Update(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)

	builder := qb.
		Update("trips")

	// опциональные поля
	if tripModifyModel.Mode != nil {
		builder = builder.Set("mode", tripModifyModel.Mode)
	}
	if tripModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", tripModifyModel.VehicleType)
	}
	if tripModifyModel.CapacityKg != nil {
		builder = builder.Set("capacity_kg", tripModifyModel.CapacityKg)
	}
	if tripModifyModel.CapacityM3 != nil {
		builder = builder.Set("capacity_m3", tripModifyModel.CapacityM3)
	}
	if tripModifyModel.DepartureTime != nil {
		builder = builder.Set("departure_time", tripModifyModel.DepartureTime)
	}
	if tripModifyModel.ArrivalTime != nil {
		builder = builder.Set("arrival_time", tripModifyModel.ArrivalTime)
	}
	if tripModifyModel.Status != nil {
		builder = builder.Set("status", tripModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": tripModifyModel.ID}).
		Suffix("RETURNING " + tripColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	var tripModel TripDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(r.scanDest(&tripModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		return nil, fmt.Errorf("unexpected trip repository update error: %w", err)
	}

	return ToDomain(&tripModel), nil
}

// ReserveCapacity фиксирует вес и объем за бронированием. Условие в WHERE
// не даст зафиксировать больше задекларированной емкости: ноль обновленных
// строк означает нехватку остатка.
func (r *Repository) ReserveCapacity(ctx context.Context, tripID int64, weightKg float64, volumeM3 *float64) error {
	query := `UPDATE trips
		SET committed_weight_kg = committed_weight_kg + $2,
			committed_volume_m3 = committed_volume_m3 + COALESCE($3, 0),
			updated_at = NOW()
		WHERE id = $1
			AND committed_weight_kg + $2 <= capacity_kg
			AND ($3::float8 IS NULL OR capacity_m3 IS NULL OR committed_volume_m3 + $3 <= capacity_m3)`

	tag, err := r.querier.Exec(ctx, query, tripID, weightKg, volumeM3)
	if err != nil {
		return fmt.Errorf("unexpected trip repository reservecapacity error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		exists, err := r.tripExists(ctx, tripID)
		if err != nil {
			return err
		}
		if !exists {
			return trip.ErrTripNotFound
		}
		return booking.ErrCapacityExceeded
	}
	return nil
}

// ReleaseCapacity возвращает рейсу емкость отмененного бронирования.
func (r *Repository) ReleaseCapacity(ctx context.Context, tripID int64, weightKg float64, volumeM3 *float64) error {
	query := `UPDATE trips
		SET committed_weight_kg = GREATEST(committed_weight_kg - $2, 0),
			committed_volume_m3 = GREATEST(committed_volume_m3 - COALESCE($3, 0), 0),
			updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, tripID, weightKg, volumeM3)
	if err != nil {
		return fmt.Errorf("unexpected trip repository releasecapacity error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}
	return nil
}

func (r *Repository) tripExists(ctx context.Context, tripID int64) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM trips WHERE id = $1)`, tripID).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected trip repository exists error: %w", err)
	}
	return exists, nil
}

func (r *Repository) scanDest(tripModel *TripDB) []interface{} {
	return []interface{}{
		&tripModel.ID,
		&tripModel.Mode,
		&tripModel.VehicleType,
		&tripModel.OriginAddress,
		&tripModel.OriginLat,
		&tripModel.OriginLng,
		&tripModel.DestinationAddress,
		&tripModel.DestinationLat,
		&tripModel.DestinationLng,
		&tripModel.CapacityKg,
		&tripModel.CapacityM3,
		&tripModel.CommittedWeightKg,
		&tripModel.CommittedVolumeM3,
		&tripModel.DepartureTime,
		&tripModel.ArrivalTime,
		&tripModel.Status,
		&tripModel.CreatedAt,
		&tripModel.UpdatedAt,
	}
}
