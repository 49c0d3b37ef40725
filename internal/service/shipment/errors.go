package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidTitle          = errors.New("invalid title")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidVolume         = errors.New("invalid volume")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidTimeWindow     = errors.New("invalid pickup/delivery window")

	ErrShipmentNotFound = errors.New("shipment not found")
)
