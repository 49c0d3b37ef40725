//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_status_post_test
package offer_status_post

import (
	"context"

	"fastship/internal/entities"
	"fastship/internal/service/lifecycle"
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
	ApplyEvent(ctx context.Context, id int64, event lifecycle.Event) (*entities.Offer, error)
}
