package trip

import (
	"strings"

	"fastship/internal/entities"
)

var knownModes = map[entities.TransportModeType]struct{}{
	entities.ModeTaxi:   {},
	entities.ModeBus:    {},
	entities.ModeCar:    {},
	entities.ModePickup: {},
	entities.ModeTruck:  {},
	entities.ModeVan:    {},
	entities.ModeTrain:  {},
	entities.ModePlane:  {},
	entities.ModeShip:   {},
}

func isValidID(id int64) bool {
	return id > 0
}

func isValidMode(mode entities.TransportModeType) bool {
	_, ok := knownModes[mode]
	return ok
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
