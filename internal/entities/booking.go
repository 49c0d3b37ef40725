package entities

import "time"

// Booking создается только из принятого (accepted) оффера, ровно одно
// бронирование на оффер. Создание бронирования - момент фиксации емкости рейса.
type Booking struct {
	ID      int64
	OfferID int64
	// TotalAmount в минимальных единицах валюты.
	TotalAmount int64
	Currency    string
	Status      BookingStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BookingStatusType string

const (
	BookingReserved  BookingStatusType = "reserved"
	BookingConfirmed BookingStatusType = "confirmed"
	BookingInTransit BookingStatusType = "in_transit"
	BookingDelivered BookingStatusType = "delivered"
	BookingCancelled BookingStatusType = "cancelled"
)

func (s BookingStatusType) String() string {
	return string(s)
}

type BookingModify struct {
	ID          *int64
	OfferID     *int64
	TotalAmount *int64
	Currency    *string
	Status      *BookingStatusType
}
