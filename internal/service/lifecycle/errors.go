package lifecycle

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownEntityType = errors.New("unknown entity type")
)
