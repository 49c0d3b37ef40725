package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fastship/internal/entities"
	"fastship/internal/repository"
	"fastship/internal/service/offer"
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

const offerColumns = `id, shipment_id, trip_id, price_amount, currency, note, status, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, offerModifyEntity entities.OfferModify) (*entities.Offer, error) {
	offerModifyModel := FromDomainModify(&offerModifyEntity)
	query := `INSERT INTO offers (shipment_id, trip_id, price_amount, currency, note, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + offerColumns

	var offerModel OfferDB
	err := r.querier.QueryRow(
		ctx,
		query,
		offerModifyModel.ShipmentID,
		offerModifyModel.TripID,
		offerModifyModel.PriceAmount,
		offerModifyModel.Currency,
		offerModifyModel.Note,
		offerModifyModel.Status,
	).Scan(
		&offerModel.ID,
		&offerModel.ShipmentID,
		&offerModel.TripID,
		&offerModel.PriceAmount,
		&offerModel.Currency,
		&offerModel.Note,
		&offerModel.Status,
		&offerModel.CreatedAt,
		&offerModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, offer.ErrActiveOfferExists
		}
		return nil, fmt.Errorf("unexpected offer repository create error: %w", err)
	}

	return ToDomain(&offerModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Offer, error) {
	query := `SELECT ` + offerColumns + `
		FROM offers
		WHERE id = $1`

	var offerModel OfferDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&offerModel.ID,
			&offerModel.ShipmentID,
			&offerModel.TripID,
			&offerModel.PriceAmount,
			&offerModel.Currency,
			&offerModel.Note,
			&offerModel.Status,
			&offerModel.CreatedAt,
			&offerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, offer.ErrOfferNotFound
		}

		return nil, fmt.Errorf("unexpected offer repository getbyid error: %w", err)
	}

	return ToDomain(&offerModel), nil
}

func (r *Repository) Update(ctx context.Context, offerModifyEntity entities.OfferModify) (*entities.Offer, error) {
	offerModifyModel := FromDomainModify(&offerModifyEntity)

	builder := qb.
		Update("offers")

	// опциональные поля
	if offerModifyModel.PriceAmount != nil {
		builder = builder.Set("price_amount", offerModifyModel.PriceAmount)
	}
	if offerModifyModel.Currency != nil {
		builder = builder.Set("currency", offerModifyModel.Currency)
	}
	if offerModifyModel.Note != nil {
		builder = builder.Set("note", offerModifyModel.Note)
	}
	if offerModifyModel.Status != nil {
		builder = builder.Set("status", offerModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": offerModifyModel.ID}).
		Suffix("RETURNING " + offerColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository update error: %w", err)
	}

	var offerModel OfferDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&offerModel.ID,
			&offerModel.ShipmentID,
			&offerModel.TripID,
			&offerModel.PriceAmount,
			&offerModel.Currency,
			&offerModel.Note,
			&offerModel.Status,
			&offerModel.CreatedAt,
			&offerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, offer.ErrOfferNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, offer.ErrActiveOfferExists
		}

		return nil, fmt.Errorf("unexpected offer repository update error: %w", err)
	}

	return ToDomain(&offerModel), nil
}

// CancelStalePending отменяет pending-офферы, не менявшиеся дольше olderThan.
func (r *Repository) CancelStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `UPDATE offers
		SET status = $1, updated_at = NOW()
		WHERE status = $2
			AND updated_at < NOW() - make_interval(secs => $3)`

	tag, err := r.querier.Exec(
		ctx,
		query,
		entities.OfferCancelled.String(),
		entities.OfferPending.String(),
		olderThan.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository cancelstalepending error: %w", err)
	}

	return tag.RowsAffected(), nil
}
