package booking

import "errors"

var (
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrInvalidOfferID   = errors.New("invalid offer id")
	ErrInvalidAmount    = errors.New("invalid total amount")
	ErrInvalidCurrency  = errors.New("invalid currency code")

	ErrBookingNotFound = errors.New("booking not found")
	// ErrOfferNotAccepted - бронировать можно только принятый оффер.
	ErrOfferNotAccepted = errors.New("offer is not in accepted status")
	// ErrAlreadyBooked - на оффер уже существует бронирование.
	ErrAlreadyBooked = errors.New("offer already has a booking")
	// ErrCapacityExceeded - свободного остатка емкости рейса не хватает.
	ErrCapacityExceeded = errors.New("trip capacity exceeded")
	// ErrBusy - конкурентный конфликт сериализации, запрос можно повторить.
	ErrBusy = errors.New("booking conflict, retry the request")
)
