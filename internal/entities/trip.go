package entities

import "time"

type Trip struct {
	ID                 int64
	Mode               TransportModeType
	VehicleType        *string
	OriginAddress      string
	OriginLat          float64
	OriginLng          float64
	DestinationAddress string
	DestinationLat     float64
	DestinationLng     float64
	CapacityKg         float64
	CapacityM3         *float64
	// CommittedWeightKg/CommittedVolumeM3 - суммарная емкость, уже обещанная
	// не отмененным бронированиям. Инвариант: committed <= capacity.
	CommittedWeightKg float64
	CommittedVolumeM3 float64
	DepartureTime     *time.Time
	ArrivalTime       *time.Time
	Status            TripStatusType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RemainingKg возвращает свободный остаток грузоподъемности.
func (t Trip) RemainingKg() float64 {
	return t.CapacityKg - t.CommittedWeightKg
}

// RemainingM3 возвращает свободный остаток объема.
// Второе значение false, если объем рейса не декларирован (не ограничен).
func (t Trip) RemainingM3() (float64, bool) {
	if t.CapacityM3 == nil {
		return 0, false
	}
	return *t.CapacityM3 - t.CommittedVolumeM3, true
}

type TransportModeType string

const (
	ModeTaxi   TransportModeType = "taxi"
	ModeBus    TransportModeType = "bus"
	ModeCar    TransportModeType = "car"
	ModePickup TransportModeType = "pickup"
	ModeTruck  TransportModeType = "truck"
	ModeVan    TransportModeType = "van"
	ModeTrain  TransportModeType = "train"
	ModePlane  TransportModeType = "plane"
	ModeShip   TransportModeType = "ship"
)

func (t TransportModeType) String() string {
	return string(t)
}

type TripStatusType string

const (
	TripOpen      TripStatusType = "open"
	TripClosed    TripStatusType = "closed"
	TripCompleted TripStatusType = "completed"
	TripCancelled TripStatusType = "cancelled"
)

func (t TripStatusType) String() string {
	return string(t)
}

type TripModify struct {
	ID                 *int64
	Mode               *TransportModeType
	VehicleType        *string
	OriginAddress      *string
	OriginLat          *float64
	OriginLng          *float64
	DestinationAddress *string
	DestinationLat     *float64
	DestinationLng     *float64
	CapacityKg         *float64
	CapacityM3         *float64
	DepartureTime      *time.Time
	ArrivalTime        *time.Time
	Status             *TripStatusType
}

// TripMatch - кандидат на перевозку: рейс и расстояние от точки забора
// груза до точки отправления рейса.
type TripMatch struct {
	Trip       Trip
	DistanceKm float64
}
