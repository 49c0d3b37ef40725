package lifecycle

import (
	"fastship/internal/entities"
)

// Пакет кодирует таблицы допустимых переходов статусов для всех сущностей.
// Чистая функция решения над (сущность, текущий статус, событие): никакого
// I/O, сохранение результата - ответственность вызывающего сервиса.

type EntityType string

const (
	EntityShipment EntityType = "shipment"
	EntityTrip     EntityType = "trip"
	EntityOffer    EntityType = "offer"
	EntityBooking  EntityType = "booking"
)

func (e EntityType) String() string {
	return string(e)
}

type Event string

const (
	// События груза.
	EventOfferAccepted    Event = "offer_accepted"
	EventBookingConfirmed Event = "booking_confirmed"

	// События рейса.
	EventClose    Event = "close"
	EventComplete Event = "complete"

	// События оффера.
	EventAccept Event = "accept"
	EventReject Event = "reject"

	// События бронирования.
	EventPaymentCaptured Event = "payment_captured"

	// Общие события.
	EventTransportStarted Event = "transport_started"
	EventTransportEnded   Event = "transport_ended"
	EventCancel           Event = "cancel"
)

func (e Event) String() string {
	return string(e)
}

type transition struct {
	from  string
	event Event
}

var transitions = map[EntityType]map[transition]string{
	EntityShipment: {
		{string(entities.ShipmentCreated), EventOfferAccepted}:     string(entities.ShipmentMatched),
		{string(entities.ShipmentMatched), EventBookingConfirmed}:  string(entities.ShipmentBooked),
		{string(entities.ShipmentBooked), EventTransportStarted}:   string(entities.ShipmentInTransit),
		{string(entities.ShipmentInTransit), EventTransportEnded}:  string(entities.ShipmentDelivered),
		{string(entities.ShipmentCreated), EventCancel}:            string(entities.ShipmentCancelled),
		{string(entities.ShipmentMatched), EventCancel}:            string(entities.ShipmentCancelled),
	},
	EntityTrip: {
		{string(entities.TripOpen), EventClose}:      string(entities.TripClosed),
		{string(entities.TripClosed), EventComplete}: string(entities.TripCompleted),
		{string(entities.TripOpen), EventCancel}:     string(entities.TripCancelled),
		{string(entities.TripClosed), EventCancel}:   string(entities.TripCancelled),
	},
	EntityOffer: {
		{string(entities.OfferPending), EventAccept}:   string(entities.OfferAccepted),
		{string(entities.OfferPending), EventReject}:   string(entities.OfferRejected),
		{string(entities.OfferPending), EventCancel}:   string(entities.OfferCancelled),
		{string(entities.OfferAccepted), EventCancel}:  string(entities.OfferCancelled),
	},
	EntityBooking: {
		{string(entities.BookingReserved), EventPaymentCaptured}:   string(entities.BookingConfirmed),
		{string(entities.BookingConfirmed), EventTransportStarted}: string(entities.BookingInTransit),
		{string(entities.BookingInTransit), EventTransportEnded}:   string(entities.BookingDelivered),
		{string(entities.BookingReserved), EventCancel}:            string(entities.BookingCancelled),
		{string(entities.BookingConfirmed), EventCancel}:           string(entities.BookingCancelled),
	},
}

// CanTransition сообщает, допустим ли переход из текущего статуса по событию.
func CanTransition(entity EntityType, from string, event Event) bool {
	table, ok := transitions[entity]
	if !ok {
		return false
	}
	_, ok = table[transition{from: from, event: event}]
	return ok
}

// Apply возвращает новый статус или ErrInvalidTransition, если переход
// не описан в таблице.
func Apply(entity EntityType, from string, event Event) (string, error) {
	table, ok := transitions[entity]
	if !ok {
		return "", ErrUnknownEntityType
	}

	next, ok := table[transition{from: from, event: event}]
	if !ok {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// Типизированные обертки над Apply для сервисов.

func ApplyShipment(from entities.ShipmentStatusType, event Event) (entities.ShipmentStatusType, error) {
	next, err := Apply(EntityShipment, string(from), event)
	if err != nil {
		return "", err
	}
	return entities.ShipmentStatusType(next), nil
}

func ApplyTrip(from entities.TripStatusType, event Event) (entities.TripStatusType, error) {
	next, err := Apply(EntityTrip, string(from), event)
	if err != nil {
		return "", err
	}
	return entities.TripStatusType(next), nil
}

func ApplyOffer(from entities.OfferStatusType, event Event) (entities.OfferStatusType, error) {
	next, err := Apply(EntityOffer, string(from), event)
	if err != nil {
		return "", err
	}
	return entities.OfferStatusType(next), nil
}

func ApplyBooking(from entities.BookingStatusType, event Event) (entities.BookingStatusType, error) {
	next, err := Apply(EntityBooking, string(from), event)
	if err != nil {
		return "", err
	}
	return entities.BookingStatusType(next), nil
}
