//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	booking_cancel_post "fastship/internal/handlers/rest/booking_cancel_post"
	booking_get "fastship/internal/handlers/rest/booking_get"
	booking_post "fastship/internal/handlers/rest/booking_post"
	matches_get "fastship/internal/handlers/rest/matches_get"
	offer_get "fastship/internal/handlers/rest/offer_get"
	offer_post "fastship/internal/handlers/rest/offer_post"
	offer_status_post "fastship/internal/handlers/rest/offer_status_post"
	shipment_get "fastship/internal/handlers/rest/shipment_get"
	shipment_post "fastship/internal/handlers/rest/shipment_post"
	transition_post "fastship/internal/handlers/rest/transition_post"
	trip_get "fastship/internal/handlers/rest/trip_get"
	trip_post "fastship/internal/handlers/rest/trip_post"
	"fastship/internal/handlers/tasks/offer_expiry"
	"fastship/internal/pkg/config"

	bookingRepo "fastship/internal/repository/booking"
	offerRepo "fastship/internal/repository/offer"
	shipmentRepo "fastship/internal/repository/shipment"
	tripRepo "fastship/internal/repository/trip"
	bookingService "fastship/internal/service/booking"
	matchingService "fastship/internal/service/matching"
	offerService "fastship/internal/service/offer"
	shipmentService "fastship/internal/service/shipment"
	transitionService "fastship/internal/service/transition"
	tripService "fastship/internal/service/trip"

	"fastship/pkg/background"
	"fastship/pkg/logger"
	"fastship/pkg/querier"
	"fastship/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OfferExpiryInterval time.Duration
	OfferPendingTTL     time.Duration
	MatchResultLimit    int
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceTrip       ServiceTrip
	ServiceOffer      ServiceOffer
	ServiceBooking    ServiceBooking
	ServiceMatching   ServiceMatching
	ServiceTransition ServiceTransition
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_get.Service
	shipment_post.Service
}

type ServiceTrip interface {
	trip_get.Service
	trip_post.Service
}

type ServiceOffer interface {
	offer_get.Service
	offer_post.Service
	offer_status_post.Service
}

type ServiceBooking interface {
	booking_get.Service
	booking_post.Service
	booking_cancel_post.Service
}

type ServiceMatching interface {
	matches_get.Service
}

type ServiceTransition interface {
	transition_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOfferExpiryInterval,
		provideOfferPendingTTL,
		provideMatchResultLimit,

		provideShipmentRepository,
		provideTripRepository,
		provideOfferRepository,
		provideBookingRepository,

		provideServiceShipment,
		provideServiceTrip,
		provideServiceOffer,
		provideServiceMatching,
		provideServiceBooking,
		provideServiceTransition,

		provideOfferExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceTrip), new(*tripService.Trip)),
		wire.Bind(new(ServiceOffer), new(*offerService.Offer)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServiceTransition), new(*transitionService.Transition)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),
		wire.Bind(new(offerService.Repository), new(*offerRepo.Repository)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.TripRepository), new(*tripRepo.Repository)),

		wire.Bind(new(offerService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(offerService.TripService), new(*tripService.Trip)),
		wire.Bind(new(offerService.BookingProvider), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.OfferService), new(*offerService.Offer)),
		wire.Bind(new(bookingService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(matchingService.ShipmentProvider), new(*shipmentService.Shipment)),
		wire.Bind(new(matchingService.TripProvider), new(*tripRepo.Repository)),
		wire.Bind(new(transitionService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(transitionService.TripService), new(*tripService.Trip)),
		wire.Bind(new(transitionService.OfferService), new(*offerService.Offer)),
		wire.Bind(new(transitionService.BookingService), new(*bookingService.Booking)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(tripService.TxManager), new(*tx.Manager)),
		wire.Bind(new(offerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(offer_expiry.Service), new(*offerService.Offer)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	BookingService *bookingService.Booking
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-captured)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOfferPendingTTL,

		provideShipmentRepository,
		provideTripRepository,
		provideOfferRepository,
		provideBookingRepository,

		provideServiceShipment,
		provideServiceTrip,
		provideServiceOffer,
		provideServiceBooking,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),
		wire.Bind(new(offerService.Repository), new(*offerRepo.Repository)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.TripRepository), new(*tripRepo.Repository)),

		wire.Bind(new(offerService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(offerService.TripService), new(*tripService.Trip)),
		wire.Bind(new(offerService.BookingProvider), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.OfferService), new(*offerService.Offer)),
		wire.Bind(new(bookingService.ShipmentService), new(*shipmentService.Shipment)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(tripService.TxManager), new(*tx.Manager)),
		wire.Bind(new(offerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func provideOfferRepository(querier *querier.Querier) *offerRepo.Repository {
	return offerRepo.New(querier)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, txManager)
}

func provideServiceTrip(
	repository tripService.Repository,
	txManager tripService.TxManager,
) *tripService.Trip {
	return tripService.New(repository, txManager)
}

func provideServiceOffer(
	repository offerService.Repository,
	shipmentSvc offerService.ShipmentService,
	tripSvc offerService.TripService,
	bookingProvider offerService.BookingProvider,
	txManager offerService.TxManager,
	pendingTTL OfferPendingTTL,
) *offerService.Offer {
	return offerService.New(repository, shipmentSvc, tripSvc, bookingProvider, txManager, time.Duration(pendingTTL))
}

func provideServiceMatching(
	shipmentProvider matchingService.ShipmentProvider,
	tripProvider matchingService.TripProvider,
	resultLimit MatchResultLimit,
) *matchingService.Matching {
	return matchingService.New(shipmentProvider, tripProvider, int(resultLimit))
}

func provideServiceBooking(
	repository bookingService.Repository,
	tripRepository bookingService.TripRepository,
	offerSvc bookingService.OfferService,
	shipmentSvc bookingService.ShipmentService,
	txManager bookingService.TxManager,
) *bookingService.Booking {
	return bookingService.New(repository, tripRepository, offerSvc, shipmentSvc, txManager)
}

func provideServiceTransition(
	shipmentSvc transitionService.ShipmentService,
	tripSvc transitionService.TripService,
	offerSvc transitionService.OfferService,
	bookingSvc transitionService.BookingService,
) *transitionService.Transition {
	return transitionService.New(shipmentSvc, tripSvc, offerSvc, bookingSvc)
}

func provideOfferExpiryInterval(cfg *config.Config) OfferExpiryInterval {
	return OfferExpiryInterval(cfg.Tasks.OfferExpiryInterval)
}

func provideOfferPendingTTL(cfg *config.Config) OfferPendingTTL {
	return OfferPendingTTL(cfg.Offers.PendingTTL)
}

func provideMatchResultLimit(cfg *config.Config) MatchResultLimit {
	return MatchResultLimit(cfg.Matching.ResultLimit)
}

func provideOfferExpiryTask(
	log logger.Logger,
	offerSvc offer_expiry.Service,
	interval OfferExpiryInterval,
) *offer_expiry.OfferExpiry {
	return offer_expiry.NewOfferExpiry(log, offerSvc, time.Duration(interval))
}

func provideTaskList(
	offerExpiryTask *offer_expiry.OfferExpiry,
) []background.Task {
	return []background.Task{
		offerExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
