package booking_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"logistics/internal/gateway/kafka/booking_events"
	historyservice "logistics/internal/service/booking_history"
	"logistics/pkg/logger"
)

type Handler struct {
	historyService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, historyService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "booking.status.changed"))

	return &Handler{
		historyService:           historyService,
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
				h.log.Info("booking.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("booking.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// true - прервать ConsumeClaim, сообщение не помечается и будет перечитано.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event booking_events.StatusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("booking.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("booking", event.BookingID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	inserted, err := h.historyService.Record(ctx, event.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, historyservice.ErrStoreUnavailable):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed history store unavailable, message will be reprocessed")
			return true

		case errors.Is(err, historyservice.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler invalid event, skipped")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("booking.status.changed handler failed to record history")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if inserted {
		msgLog.Info("booking.status.changed: recorded")
	} else {
		msgLog.Info("booking.status.changed: duplicate, already recorded")
	}

	sess.MarkMessage(message, "")
	return false
}
