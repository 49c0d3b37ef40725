//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_cancel_post_test
package booking_cancel_post

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
	CancelBooking(ctx context.Context, id int64) (*entities.Booking, error)
}
