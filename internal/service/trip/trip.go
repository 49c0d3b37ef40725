package trip

import (
	"context"
	"fmt"

	"fastship/internal/entities"
	"fastship/internal/service/lifecycle"
)

type Trip struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Trip {
	return &Trip{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Trip) CreateTrip(ctx context.Context, tripModify entities.TripModify) (*entities.Trip, error) {
	if tripModify.Mode == nil ||
		tripModify.CapacityKg == nil ||
		tripModify.OriginAddress == nil ||
		tripModify.OriginLat == nil ||
		tripModify.OriginLng == nil ||
		tripModify.DestinationAddress == nil ||
		tripModify.DestinationLat == nil ||
		tripModify.DestinationLng == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidMode(*tripModify.Mode) {
		return nil, ErrInvalidMode
	}
	if *tripModify.CapacityKg <= 0 {
		return nil, ErrInvalidCapacity
	}
	if tripModify.CapacityM3 != nil && *tripModify.CapacityM3 <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !isValidAddress(*tripModify.OriginAddress) || !isValidAddress(*tripModify.DestinationAddress) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidCoordinates(*tripModify.OriginLat, *tripModify.OriginLng) ||
		!isValidCoordinates(*tripModify.DestinationLat, *tripModify.DestinationLng) {
		return nil, ErrInvalidCoordinates
	}
	if tripModify.DepartureTime != nil && tripModify.ArrivalTime != nil &&
		tripModify.ArrivalTime.Before(*tripModify.DepartureTime) {
		return nil, ErrInvalidTimeWindow
	}

	initialStatus := entities.TripOpen
	tripModify.Status = &initialStatus

	created, err := s.repository.Create(ctx, tripModify)
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	return created, nil
}

func (s *Trip) GetTrip(ctx context.Context, id int64) (*entities.Trip, error) {
	if !isValidID(id) {
		return nil, ErrInvalidTripID
	}

	tripEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	return tripEntity, nil
}

// ApplyEvent переводит рейс в новый статус по событию жизненного цикла.
func (s *Trip) ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Trip, error) {
	if !isValidID(id) {
		return nil, ErrInvalidTripID
	}

	var updated *entities.Trip
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		nextStatus, err := lifecycle.ApplyTrip(current.Status, event)
		if err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, entities.TripModify{
			ID:     &current.ID,
			Status: &nextStatus,
		})
		if err != nil {
			return fmt.Errorf("update trip status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
