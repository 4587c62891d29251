// Package worker keeps a checkout session in step with backend notifications.
package worker

import (
	"context"
	"fmt"
	"time"

	"checkout-sdk/internal/broker"
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

const (
	idempotencyTTL = 24 * time.Hour
	lockTTL        = 30 * time.Second
)

// Session is the part of the checkout service a notification can refresh
type Session interface {
	LoadCheckout(ctx context.Context, checkoutID string, include ...string) (*selector.CheckoutStoreSelector, error)
	LoadCurrentOrder(ctx context.Context) (*selector.CheckoutStoreSelector, error)
	Selector() *selector.CheckoutStoreSelector
}

// Journal durably records processed notifications
type Journal interface {
	IsNotificationProcessed(ctx context.Context, eventID string) (bool, error)
	MarkNotificationProcessed(ctx context.Context, n models.Notification) error
}

// Idempotency is the fast path for duplicate detection and the per
// notification lock
type Idempotency interface {
	CheckIdempotencyKey(ctx context.Context, key string) (bool, error)
	SetIdempotencyKey(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	AcquireLock(ctx context.Context, lockKey string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, lockKey string) error
}

// NotificationWorker consumes backend notifications and refreshes the session
type NotificationWorker struct {
	consumer   *broker.Consumer
	handler    *broker.NotificationHandler
	session    Session
	journal    Journal
	keys       Idempotency
	checkoutID string
	logger     *zap.Logger
}

// NewNotificationWorker creates a new notification worker. journal and keys
// may be nil. checkoutID limits the worker to one checkout; when empty the
// worker follows the checkout currently loaded in the session.
func NewNotificationWorker(consumer *broker.Consumer, session Session, journal Journal, keys Idempotency, checkoutID string) *NotificationWorker {
	w := &NotificationWorker{
		consumer:   consumer,
		handler:    broker.NewNotificationHandler(),
		session:    session,
		journal:    journal,
		keys:       keys,
		checkoutID: checkoutID,
		logger:     util.ComponentLogger("notification-worker"),
	}

	w.handler.On(models.NotificationCheckoutUpdated, w.HandleNotification)
	w.handler.On(models.NotificationOrderStatusChanged, w.HandleNotification)
	w.handler.On(models.NotificationPaymentStatusChanged, w.HandleNotification)

	return w
}

// Start starts the worker
func (w *NotificationWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting notification worker")
	return w.consumer.StartConsuming(ctx, w.handler.HandleMessage)
}

// Stop stops the worker
func (w *NotificationWorker) Stop() error {
	w.logger.Info("Stopping notification worker")
	return w.consumer.Close()
}

// HandleNotification refreshes the session for n unless n was already
// processed. A failed refresh is returned so the message is redelivered.
func (w *NotificationWorker) HandleNotification(ctx context.Context, n *models.Notification) (err error) {
	ctx, span := util.StartSpan(ctx, "NotificationWorker.HandleNotification")
	defer func() { util.EndSpan(span, err) }()

	if current := w.currentCheckoutID(); current == "" || n.CheckoutID != current {
		w.logger.Debug("Notification for another checkout", zap.String("checkout_id", n.CheckoutID))
		util.NotificationsProcessedTotal.WithLabelValues(n.EventType, "ignored").Inc()
		return nil
	}

	if w.isProcessed(ctx, n.EventID) {
		w.logger.Info("Notification already processed", zap.String("event_id", n.EventID))
		util.NotificationsProcessedTotal.WithLabelValues(n.EventType, "duplicate").Inc()
		return nil
	}

	lockKey := "notification:" + n.EventID
	if w.keys != nil {
		acquired, err := w.keys.AcquireLock(ctx, lockKey, lockTTL)
		if err != nil {
			w.logger.Error("Failed to acquire notification lock", zap.Error(err))
		} else if !acquired {
			w.logger.Info("Notification is being processed elsewhere", zap.String("event_id", n.EventID))
			util.NotificationsProcessedTotal.WithLabelValues(n.EventType, "locked").Inc()
			return nil
		} else {
			defer func() {
				if err := w.keys.ReleaseLock(context.Background(), lockKey); err != nil {
					w.logger.Error("Failed to release notification lock", zap.Error(err))
				}
			}()
		}
	}

	if err := w.refresh(ctx, n); err != nil {
		util.NotificationsProcessedTotal.WithLabelValues(n.EventType, "failed").Inc()
		return fmt.Errorf("failed to refresh session for %s: %w", n.EventType, err)
	}

	w.markProcessed(ctx, *n)
	util.NotificationsProcessedTotal.WithLabelValues(n.EventType, "processed").Inc()
	return nil
}

func (w *NotificationWorker) currentCheckoutID() string {
	if w.checkoutID != "" {
		return w.checkoutID
	}
	if checkout := w.session.Selector().GetCheckout(); checkout != nil {
		return checkout.ID
	}
	return ""
}

func (w *NotificationWorker) refresh(ctx context.Context, n *models.Notification) error {
	switch n.EventType {
	case models.NotificationCheckoutUpdated:
		_, err := w.session.LoadCheckout(ctx, n.CheckoutID)
		return err
	case models.NotificationOrderStatusChanged, models.NotificationPaymentStatusChanged:
		_, err := w.session.LoadCurrentOrder(ctx)
		return err
	default:
		return nil
	}
}

// isProcessed consults the idempotency keys first and the journal second.
// Lookup faults are logged and treated as not processed.
func (w *NotificationWorker) isProcessed(ctx context.Context, eventID string) bool {
	if w.keys != nil {
		exists, err := w.keys.CheckIdempotencyKey(ctx, "notification:"+eventID)
		if err != nil {
			w.logger.Error("Failed to check idempotency key", zap.Error(err))
		} else if exists {
			return true
		}
	}

	if w.journal != nil {
		processed, err := w.journal.IsNotificationProcessed(ctx, eventID)
		if err != nil {
			w.logger.Error("Failed to check journal", zap.Error(err))
			return false
		}
		return processed
	}

	return false
}

func (w *NotificationWorker) markProcessed(ctx context.Context, n models.Notification) {
	if w.journal != nil {
		if err := w.journal.MarkNotificationProcessed(ctx, n); err != nil {
			w.logger.Error("Failed to mark notification processed", zap.Error(err))
		}
	}
	if w.keys != nil {
		if err := w.keys.SetIdempotencyKey(ctx, "notification:"+n.EventID, n.EventType, idempotencyTTL); err != nil {
			w.logger.Error("Failed to set idempotency key", zap.Error(err))
		}
	}
}
