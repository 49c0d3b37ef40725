package shipment

import (
	"fastship/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:             s.ID,
		Title:          s.Title,
		Description:    s.Description,
		WeightKg:       s.WeightKg,
		VolumeM3:       s.VolumeM3,
		PickupAddress:  s.PickupAddress,
		PickupLat:      s.PickupLat,
		PickupLng:      s.PickupLng,
		DropoffAddress: s.DropoffAddress,
		DropoffLat:     s.DropoffLat,
		DropoffLng:     s.DropoffLng,
		EarliestPickup: s.EarliestPickup,
		LatestDelivery: s.LatestDelivery,
		Status:         entities.ShipmentStatusType(s.Status),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{
		ID:             shipmentModify.ID,
		Title:          shipmentModify.Title,
		Description:    shipmentModify.Description,
		WeightKg:       shipmentModify.WeightKg,
		VolumeM3:       shipmentModify.VolumeM3,
		PickupAddress:  shipmentModify.PickupAddress,
		PickupLat:      shipmentModify.PickupLat,
		PickupLng:      shipmentModify.PickupLng,
		DropoffAddress: shipmentModify.DropoffAddress,
		DropoffLat:     shipmentModify.DropoffLat,
		DropoffLng:     shipmentModify.DropoffLng,
		EarliestPickup: shipmentModify.EarliestPickup,
		LatestDelivery: shipmentModify.LatestDelivery,
	}

	if shipmentModify.Status != nil {
		statusType := shipmentModify.Status.String()
		shipmentDB.Status = &statusType
	}

	return shipmentDB
}
