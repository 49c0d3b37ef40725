package offer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOfferID        = errors.New("invalid offer id")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidCurrency       = errors.New("invalid currency code")

	ErrOfferNotFound = errors.New("offer not found")
	// ErrActiveOfferExists - по паре (груз, рейс) уже есть оффер
	// в нетерминальном статусе.
	ErrActiveOfferExists = errors.New("active offer already exists for shipment and trip")
)
