package matching

import "errors"

var ErrInvalidShipmentID = errors.New("invalid shipment id")
