package shipment

import "strings"

func isValidID(id int64) bool {
	return id > 0
}

func isValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
