package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fastship/internal/entities"
	"fastship/internal/repository"
	"fastship/internal/service/booking"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const bookingColumns = `id, offer_id, total_amount, currency, status, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, bookingModifyEntity entities.BookingModify) (*entities.Booking, error) {
	bookingModifyModel := FromDomainModify(&bookingModifyEntity)
	query := `INSERT INTO bookings (offer_id, total_amount, currency, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + bookingColumns

	var bookingModel BookingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		bookingModifyModel.OfferID,
		bookingModifyModel.TotalAmount,
		bookingModifyModel.Currency,
		bookingModifyModel.Status,
	).Scan(
		&bookingModel.ID,
		&bookingModel.OfferID,
		&bookingModel.TotalAmount,
		&bookingModel.Currency,
		&bookingModel.Status,
		&bookingModel.CreatedAt,
		&bookingModel.UpdatedAt,
	)
	if err != nil {
		// уникальность offer_id гарантирует ровно одно бронирование на оффер
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, booking.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	return ToDomain(&bookingModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1`

	var bookingModel BookingDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&bookingModel.ID,
			&bookingModel.OfferID,
			&bookingModel.TotalAmount,
			&bookingModel.Currency,
			&bookingModel.Status,
			&bookingModel.CreatedAt,
			&bookingModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}

		return nil, fmt.Errorf("unexpected booking repository getbyid error: %w", err)
	}

	return ToDomain(&bookingModel), nil
}

func (r *Repository) GetByOfferID(ctx context.Context, offerID int64) (*entities.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE offer_id = $1`

	var bookingModel BookingDB
	err := r.querier.QueryRow(ctx, query, offerID).
		Scan(
			&bookingModel.ID,
			&bookingModel.OfferID,
			&bookingModel.TotalAmount,
			&bookingModel.Currency,
			&bookingModel.Status,
			&bookingModel.CreatedAt,
			&bookingModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}

		return nil, fmt.Errorf("unexpected booking repository getbyofferid error: %w", err)
	}

	return ToDomain(&bookingModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.BookingStatusType) (*entities.Booking, error) {
	query := `UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	var bookingModel BookingDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).
		Scan(
			&bookingModel.ID,
			&bookingModel.OfferID,
			&bookingModel.TotalAmount,
			&bookingModel.Currency,
			&bookingModel.Status,
			&bookingModel.CreatedAt,
			&bookingModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}

		return nil, fmt.Errorf("unexpected booking repository updatestatus error: %w", err)
	}

	return ToDomain(&bookingModel), nil
}
