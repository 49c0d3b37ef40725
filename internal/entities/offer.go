package entities

import "time"

// DefaultCurrency валюта по умолчанию для цен и бронирований.
const DefaultCurrency = "SAR"

type Offer struct {
	ID         int64
	ShipmentID int64
	TripID     int64
	// PriceAmount в минимальных единицах валюты (халалы, центы).
	PriceAmount int64
	Currency    string
	Note        *string
	Status      OfferStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OfferStatusType string

const (
	OfferPending   OfferStatusType = "pending"
	OfferAccepted  OfferStatusType = "accepted"
	OfferRejected  OfferStatusType = "rejected"
	OfferCancelled OfferStatusType = "cancelled"
)

func (s OfferStatusType) String() string {
	return string(s)
}

type OfferModify struct {
	ID          *int64
	ShipmentID  *int64
	TripID      *int64
	PriceAmount *int64
	Currency    *string
	Note        *string
	Status      *OfferStatusType
}
