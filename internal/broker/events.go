package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
	"checkout-sdk/internal/transport"
	"checkout-sdk/internal/util"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SignalPublisher journals every signal applied to a session store. Observe
// never blocks the store; when the queue is full the signal is dropped.
type SignalPublisher struct {
	producer *Producer
	events   chan models.SignalEvent
	logger   *zap.Logger
}

// NewSignalPublisher creates a new signal publisher with a queue of size buffer
func NewSignalPublisher(producer *Producer, buffer int) *SignalPublisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &SignalPublisher{
		producer: producer,
		events:   make(chan models.SignalEvent, buffer),
		logger:   util.ComponentLogger("signal-publisher"),
	}
}

// Observe queues sig for publishing. It has the store subscriber signature.
func (p *SignalPublisher) Observe(s state.StoreState, sig signal.Signal) {
	event := NewSignalEvent(s, sig)

	select {
	case p.events <- event:
	default:
		util.SignalsPublishedTotal.WithLabelValues("dropped").Inc()
		p.logger.Error("Signal queue full, dropping signal", zap.String("type", event.EventType))
	}
}

// Run publishes queued signals until ctx is cancelled
func (p *SignalPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-p.events:
			p.publish(ctx, event)
		}
	}
}

func (p *SignalPublisher) publish(ctx context.Context, event models.SignalEvent) {
	key := fmt.Sprintf("checkout-%s", event.CheckoutID)
	if err := p.producer.PublishEvent(ctx, key, event); err != nil {
		util.SignalsPublishedTotal.WithLabelValues("failed").Inc()
		p.logger.Error("Failed to publish signal",
			zap.String("type", event.EventType),
			zap.Error(err))
		return
	}
	util.SignalsPublishedTotal.WithLabelValues("published").Inc()
}

// NewSignalEvent builds the journal record of sig applied to s. Errors are
// not JSON values, so failure payloads become the problem document of a
// request error or the error message.
func NewSignalEvent(s state.StoreState, sig signal.Signal) models.SignalEvent {
	event := models.SignalEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: sig.Type.String(),
			Timestamp: time.Now().UTC(),
		},
		Error:   sig.Error,
		Payload: sig.Payload,
	}

	if s.Checkout.Data != nil {
		event.CheckoutID = s.Checkout.Data.ID
	}

	if err := sig.Err(); err != nil {
		if reqErr, ok := transport.AsRequestError(err); ok {
			event.Payload = reqErr
		} else {
			event.Payload = err.Error()
		}
	}

	return event
}

// NotificationHandler routes backend notifications by type
type NotificationHandler struct {
	handlers map[string]func(context.Context, *models.Notification) error
	logger   *zap.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{
		handlers: make(map[string]func(context.Context, *models.Notification) error),
		logger:   util.ComponentLogger("notifications"),
	}
}

// On registers handler for notifications of eventType
func (h *NotificationHandler) On(eventType string, handler func(context.Context, *models.Notification) error) {
	h.handlers[eventType] = handler
}

// HandleMessage routes messages to appropriate handlers
func (h *NotificationHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var notification models.Notification
	if err := json.Unmarshal(msg.Value, &notification); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	h.logger.Debug("Handling notification",
		zap.String("type", notification.EventType),
		zap.String("id", notification.EventID))

	handler, ok := h.handlers[notification.EventType]
	if !ok {
		h.logger.Debug("Unhandled notification type", zap.String("type", notification.EventType))
		return nil
	}

	return handler(ctx, &notification)
}
