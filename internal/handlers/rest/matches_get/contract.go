//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matches_get_test
package matches_get

import (
	"context"

	"fastship/internal/entities"
	"fastship/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Rank(ctx context.Context, shipmentID int64) ([]entities.TripMatch, error)
}
