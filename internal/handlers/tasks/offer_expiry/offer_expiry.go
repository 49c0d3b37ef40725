package offer_expiry

import (
	"context"
	"time"

	"fastship/pkg/logger"
)

type Service interface {
	ExpireStaleOffers(ctx context.Context) (int64, error)
}

type OfferExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOfferExpiry(log logger.Logger, service Service, interval time.Duration) *OfferExpiry {
	return &OfferExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OfferExpiry) TTL() time.Duration {
	return o.interval
}

func (o *OfferExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	rowsAffected, err := o.service.ExpireStaleOffers(ctxWithTimeout)

	if rowsAffected > 0 {
		o.log.With(
			logger.NewField("cancelled_offers", rowsAffected),
		).Info("offer expiry")
	}

	return err
}

func (o *OfferExpiry) Info() string {
	return "offer expiry"
}
