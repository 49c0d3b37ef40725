package trip

import (
	"fastship/internal/entities"
)

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	return &entities.Trip{
		ID:                 t.ID,
		Mode:               entities.TransportModeType(t.Mode),
		VehicleType:        t.VehicleType,
		OriginAddress:      t.OriginAddress,
		OriginLat:          t.OriginLat,
		OriginLng:          t.OriginLng,
		DestinationAddress: t.DestinationAddress,
		DestinationLat:     t.DestinationLat,
		DestinationLng:     t.DestinationLng,
		CapacityKg:         t.CapacityKg,
		CapacityM3:         t.CapacityM3,
		CommittedWeightKg:  t.CommittedWeightKg,
		CommittedVolumeM3:  t.CommittedVolumeM3,
		DepartureTime:      t.DepartureTime,
		ArrivalTime:        t.ArrivalTime,
		Status:             entities.TripStatusType(t.Status),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func FromDomainModify(tripModify *entities.TripModify) *TripModifyDB {
	if tripModify == nil {
		return nil
	}
	tripDB := &TripModifyDB{
		ID:                 tripModify.ID,
		VehicleType:        tripModify.VehicleType,
		OriginAddress:      tripModify.OriginAddress,
		OriginLat:          tripModify.OriginLat,
		OriginLng:          tripModify.OriginLng,
		DestinationAddress: tripModify.DestinationAddress,
		DestinationLat:     tripModify.DestinationLat,
		DestinationLng:     tripModify.DestinationLng,
		CapacityKg:         tripModify.CapacityKg,
		CapacityM3:         tripModify.CapacityM3,
		DepartureTime:      tripModify.DepartureTime,
		ArrivalTime:        tripModify.ArrivalTime,
	}

	if tripModify.Mode != nil {
		modeType := tripModify.Mode.String()
		tripDB.Mode = &modeType
	}
	if tripModify.Status != nil {
		statusType := tripModify.Status.String()
		tripDB.Status = &statusType
	}

	return tripDB
}

func ToDomainList(tripsDB []TripDB) []entities.Trip {
	if len(tripsDB) == 0 {
		return []entities.Trip{}
	}

	result := make([]entities.Trip, len(tripsDB))
	for i, tripDB := range tripsDB {
		result[i] = *ToDomain(&tripDB)
	}
	return result
}
