package matching

import (
	"context"
	"fmt"
	"sort"

	"fastship/internal/entities"
	"fastship/pkg/geo"
)

// DefaultResultLimit ограничивает выдачу кандидатов сверху.
const DefaultResultLimit = 20

type Matching struct {
	shipmentProvider ShipmentProvider
	tripProvider     TripProvider
	resultLimit      int
}

func New(shipmentProvider ShipmentProvider, tripProvider TripProvider, resultLimit int) *Matching {
	if resultLimit <= 0 {
		resultLimit = DefaultResultLimit
	}
	return &Matching{
		shipmentProvider: shipmentProvider,
		tripProvider:     tripProvider,
		resultLimit:      resultLimit,
	}
}

// Rank возвращает открытые рейсы, способные принять груз, отсортированные
// по расстоянию от точки забора груза до точки отправления рейса.
// При равных расстояниях порядок детерминирован по ID рейса.
func (s *Matching) Rank(ctx context.Context, shipmentID int64) ([]entities.TripMatch, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}

	shipmentEntity, err := s.shipmentProvider.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	openTrips, err := s.tripProvider.GetByStatus(ctx, entities.TripOpen)
	if err != nil {
		return nil, fmt.Errorf("list open trips: %w", err)
	}

	matches := make([]entities.TripMatch, 0, len(openTrips))
	for _, tripEntity := range openTrips {
		if !fits(shipmentEntity, tripEntity) {
			continue
		}

		matches = append(matches, entities.TripMatch{
			Trip: tripEntity,
			DistanceKm: geo.DistanceKm(
				shipmentEntity.PickupLat, shipmentEntity.PickupLng,
				tripEntity.OriginLat, tripEntity.OriginLng,
			),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Trip.ID < matches[j].Trip.ID
	})

	if len(matches) > s.resultLimit {
		matches = matches[:s.resultLimit]
	}
	return matches, nil
}

// fits проверяет, что свободного остатка емкости рейса хватает на груз.
// Объем сравнивается только когда задекларирован и у груза, и у рейса.
func fits(shipmentEntity *entities.Shipment, tripEntity entities.Trip) bool {
	if shipmentEntity.WeightKg > tripEntity.RemainingKg() {
		return false
	}

	if shipmentEntity.VolumeM3 != nil {
		if remaining, limited := tripEntity.RemainingM3(); limited && *shipmentEntity.VolumeM3 > remaining {
			return false
		}
	}
	return true
}
