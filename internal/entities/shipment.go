package entities

import "time"

type Shipment struct {
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
	Status         ShipmentStatusType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ShipmentStatusType string

const (
	ShipmentCreated   ShipmentStatusType = "created"
	ShipmentMatched   ShipmentStatusType = "matched"
	ShipmentBooked    ShipmentStatusType = "booked"
	ShipmentInTransit ShipmentStatusType = "in_transit"
	ShipmentDelivered ShipmentStatusType = "delivered"
	ShipmentCancelled ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

type ShipmentModify struct {
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
	Status         *ShipmentStatusType
}
