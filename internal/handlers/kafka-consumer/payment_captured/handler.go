package payment_captured

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	bookingservice "fastship/internal/service/booking"
	"fastship/internal/service/lifecycle"
	"fastship/pkg/logger"
)

type capturedEvent struct {
	BookingID int64  `json:"booking_id"`
	PaymentID string `json:"payment_id"`
}

type Handler struct {
	bookingService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, bookingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		bookingService:           bookingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.captured: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.captured: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event capturedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.captured handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("booking", event.BookingID),
		logger.NewField("payment", event.PaymentID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.captured processing")

	booking, err := h.bookingService.ConfirmBooking(ctx, event.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, bookingservice.ErrBusy):
			// конфликт сериализации — сообщение не подтверждаем, брокер отдаст его снова
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler serialization conflict, message will be reprocessed")
			return false

		case errors.Is(err, bookingservice.ErrBookingNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler booking not found")

		case errors.Is(err, lifecycle.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler booking is not reserved")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.captured handler failed to confirm booking")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("booking", booking.ID),
		logger.NewField("current_status", booking.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("payment.captured: confirmed")

	sess.MarkMessage(message, "")
	return false
}
