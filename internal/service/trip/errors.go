package trip

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTripID         = errors.New("invalid trip id")
	ErrInvalidMode           = errors.New("invalid transport mode")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidTimeWindow     = errors.New("invalid departure/arrival window")

	ErrTripNotFound = errors.New("trip not found")
)
