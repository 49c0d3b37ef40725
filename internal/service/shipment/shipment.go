package shipment

import (
	"context"
	"fmt"

	"fastship/internal/entities"
	"fastship/internal/service/lifecycle"
)

type Shipment struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Shipment {
	return &Shipment{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.Title == nil ||
		shipmentModify.WeightKg == nil ||
		shipmentModify.PickupAddress == nil ||
		shipmentModify.PickupLat == nil ||
		shipmentModify.PickupLng == nil ||
		shipmentModify.DropoffAddress == nil ||
		shipmentModify.DropoffLat == nil ||
		shipmentModify.DropoffLng == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidTitle(*shipmentModify.Title) {
		return nil, ErrInvalidTitle
	}
	if *shipmentModify.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	if shipmentModify.VolumeM3 != nil && *shipmentModify.VolumeM3 <= 0 {
		return nil, ErrInvalidVolume
	}
	if !isValidAddress(*shipmentModify.PickupAddress) || !isValidAddress(*shipmentModify.DropoffAddress) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidCoordinates(*shipmentModify.PickupLat, *shipmentModify.PickupLng) ||
		!isValidCoordinates(*shipmentModify.DropoffLat, *shipmentModify.DropoffLng) {
		return nil, ErrInvalidCoordinates
	}
	if shipmentModify.EarliestPickup != nil && shipmentModify.LatestDelivery != nil &&
		shipmentModify.LatestDelivery.Before(*shipmentModify.EarliestPickup) {
		return nil, ErrInvalidTimeWindow
	}

	initialStatus := entities.ShipmentCreated
	shipmentModify.Status = &initialStatus

	created, err := s.repository.Create(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	return created, nil
}

func (s *Shipment) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	if !isValidID(id) {
		return nil, ErrInvalidShipmentID
	}

	shipmentEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	return shipmentEntity, nil
}

// ApplyEvent переводит груз в новый статус по событию жизненного цикла.
// Загрузка и обновление выполняются в одной транзакции, чтобы конкурентные
// переходы не перезаписывали друг друга.
func (s *Shipment) ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Shipment, error) {
	if !isValidID(id) {
		return nil, ErrInvalidShipmentID
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		nextStatus, err := lifecycle.ApplyShipment(current.Status, event)
		if err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, entities.ShipmentModify{
			ID:     &current.ID,
			Status: &nextStatus,
		})
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
