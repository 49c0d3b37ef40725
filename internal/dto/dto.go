// Package dto описывает тела HTTP-запросов и ответов REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type CreateResponse struct {
	ID int64 `json:"id"`
}

type ShipmentCreate struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	WeightKg       float64    `json:"weight_kg"`
	VolumeM3       *float64   `json:"volume_m3,omitempty"`
	PickupAddress  string     `json:"pickup_address"`
	PickupLat      float64    `json:"pickup_lat"`
	PickupLng      float64    `json:"pickup_lng"`
	DropoffAddress string     `json:"dropoff_address"`
	DropoffLat     float64    `json:"dropoff_lat"`
	DropoffLng     float64    `json:"dropoff_lng"`
	EarliestPickup *time.Time `json:"earliest_pickup,omitempty"`
	LatestDelivery *time.Time `json:"latest_delivery,omitempty"`
}

type Shipment struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	WeightKg       float64    `json:"weight_kg"`
	VolumeM3       *float64   `json:"volume_m3,omitempty"`
	PickupAddress  string     `json:"pickup_address"`
	PickupLat      float64    `json:"pickup_lat"`
	PickupLng      float64    `json:"pickup_lng"`
	DropoffAddress string     `json:"dropoff_address"`
	DropoffLat     float64    `json:"dropoff_lat"`
	DropoffLng     float64    `json:"dropoff_lng"`
	EarliestPickup *time.Time `json:"earliest_pickup,omitempty"`
	LatestDelivery *time.Time `json:"latest_delivery,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type TripCreate struct {
	Mode               string     `json:"mode"`
	VehicleType        *string    `json:"vehicle_type,omitempty"`
	OriginAddress      string     `json:"origin_address"`
	OriginLat          float64    `json:"origin_lat"`
	OriginLng          float64    `json:"origin_lng"`
	DestinationAddress string     `json:"destination_address"`
	DestinationLat     float64    `json:"destination_lat"`
	DestinationLng     float64    `json:"destination_lng"`
	CapacityKg         float64    `json:"capacity_kg"`
	CapacityM3         *float64   `json:"capacity_m3,omitempty"`
	DepartureTime      *time.Time `json:"departure_time,omitempty"`
	ArrivalTime        *time.Time `json:"arrival_time,omitempty"`
}

type Trip struct {
	ID                 int64      `json:"id"`
	Mode               string     `json:"mode"`
	VehicleType        *string    `json:"vehicle_type,omitempty"`
	OriginAddress      string     `json:"origin_address"`
	OriginLat          float64    `json:"origin_lat"`
	OriginLng          float64    `json:"origin_lng"`
	DestinationAddress string     `json:"destination_address"`
	DestinationLat     float64    `json:"destination_lat"`
	DestinationLng     float64    `json:"destination_lng"`
	CapacityKg         float64    `json:"capacity_kg"`
	CapacityM3         *float64   `json:"capacity_m3,omitempty"`
	CommittedWeightKg  float64    `json:"committed_weight_kg"`
	CommittedVolumeM3  float64    `json:"committed_volume_m3"`
	DepartureTime      *time.Time `json:"departure_time,omitempty"`
	ArrivalTime        *time.Time `json:"arrival_time,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type TripMatch struct {
	Trip       Trip    `json:"trip"`
	DistanceKm float64 `json:"distance_km"`
}

type MatchesResponse struct {
	ShipmentID int64       `json:"shipment_id"`
	Matches    []TripMatch `json:"matches"`
}

type OfferCreate struct {
	ShipmentID  int64   `json:"shipment_id"`
	TripID      int64   `json:"trip_id"`
	PriceAmount int64   `json:"price_amount"`
	Currency    *string `json:"currency,omitempty"`
	Note        *string `json:"note,omitempty"`
}

type Offer struct {
	ID          int64     `json:"id"`
	ShipmentID  int64     `json:"shipment_id"`
	TripID      int64     `json:"trip_id"`
	PriceAmount int64     `json:"price_amount"`
	Currency    string    `json:"currency"`
	Note        *string   `json:"note,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OfferStatusUpdate struct {
	Event string `json:"event"`
}

type BookingCreate struct {
	OfferID     int64   `json:"offer_id"`
	TotalAmount *int64  `json:"total_amount,omitempty"`
	Currency    *string `json:"currency,omitempty"`
}

type Booking struct {
	ID          int64     `json:"id"`
	OfferID     int64     `json:"offer_id"`
	TotalAmount int64     `json:"total_amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TransitionRequest struct {
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Event      string `json:"event"`
}

type TransitionResponse struct {
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Status     string `json:"status"`
}
