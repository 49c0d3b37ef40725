//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_post_test
package transition_post

import (
	"context"

	"fastship/internal/service/lifecycle"
	"fastship/internal/service/transition"
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
	ApplyTransition(ctx context.Context, entityType lifecycle.EntityType, id int64, event lifecycle.Event) (*transition.Result, error)
}
