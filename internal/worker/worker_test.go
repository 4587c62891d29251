package worker

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"checkout-sdk/internal/fixture"
	"checkout-sdk/internal/journal"
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/redisclient"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/state"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	existsQuery = "SELECT EXISTS(SELECT 1 FROM processed_notifications WHERE event_id = $1)"
	insertQuery = "INSERT INTO processed_notifications (event_id, event_type, checkout_id) VALUES ($1, $2, $3) ON CONFLICT (event_id) DO NOTHING"
)

type fakeSession struct {
	loaded        state.StoreState
	checkoutLoads []string
	orderLoads    int
	err           error
}

func (s *fakeSession) LoadCheckout(ctx context.Context, checkoutID string, include ...string) (*selector.CheckoutStoreSelector, error) {
	s.checkoutLoads = append(s.checkoutLoads, checkoutID)
	return selector.NewCheckoutStoreSelector(state.StoreState{}), s.err
}

func (s *fakeSession) Selector() *selector.CheckoutStoreSelector {
	return selector.NewCheckoutStoreSelector(s.loaded)
}

func (s *fakeSession) LoadCurrentOrder(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	s.orderLoads++
	return selector.NewCheckoutStoreSelector(state.StoreState{}), s.err
}

type harness struct {
	worker  *NotificationWorker
	session *fakeSession
	sql     sqlmock.Sqlmock
	redis   *miniredis.Miniredis
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	keys := redisclient.Wrap(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	session := &fakeSession{}
	return &harness{
		worker:  NewNotificationWorker(nil, session, journal.New(sqlx.NewDb(db, "postgres")), keys, fixture.CheckoutID),
		session: session,
		sql:     mock,
		redis:   mr,
	}
}

func notification(eventType string) *models.Notification {
	return &models.Notification{
		BaseEvent:  models.BaseEvent{EventID: "evt-1", EventType: eventType},
		CheckoutID: fixture.CheckoutID,
		OrderID:    fixture.OrderID,
	}
}

func (h *harness) expectUnprocessed() {
	h.sql.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs("evt-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
}

func TestHandleNotification_CheckoutUpdatedReloadsCheckout(t *testing.T) {
	h := newHarness(t)
	h.expectUnprocessed()
	h.sql.ExpectExec(regexp.QuoteMeta(insertQuery)).
		WithArgs("evt-1", models.NotificationCheckoutUpdated, fixture.CheckoutID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := h.worker.HandleNotification(context.Background(), notification(models.NotificationCheckoutUpdated))

	require.NoError(t, err)
	assert.Equal(t, []string{fixture.CheckoutID}, h.session.checkoutLoads)
	assert.Zero(t, h.session.orderLoads)
	assert.True(t, h.redis.Exists("idempotency:notification:evt-1"))
	assert.False(t, h.redis.Exists("lock:notification:evt-1"))
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestHandleNotification_OrderNotificationsReloadOrder(t *testing.T) {
	for _, eventType := range []string{models.NotificationOrderStatusChanged, models.NotificationPaymentStatusChanged} {
		t.Run(eventType, func(t *testing.T) {
			h := newHarness(t)
			h.expectUnprocessed()
			h.sql.ExpectExec(regexp.QuoteMeta(insertQuery)).WillReturnResult(sqlmock.NewResult(0, 1))

			err := h.worker.HandleNotification(context.Background(), notification(eventType))

			require.NoError(t, err)
			assert.Equal(t, 1, h.session.orderLoads)
			assert.Empty(t, h.session.checkoutLoads)
		})
	}
}

func TestHandleNotification_DuplicateFromIdempotencyKey(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.redis.Set("idempotency:notification:evt-1", "CHECKOUT_UPDATED"))

	err := h.worker.HandleNotification(context.Background(), notification(models.NotificationCheckoutUpdated))

	require.NoError(t, err)
	assert.Empty(t, h.session.checkoutLoads)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestHandleNotification_DuplicateFromJournal(t *testing.T) {
	h := newHarness(t)
	h.sql.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs("evt-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := h.worker.HandleNotification(context.Background(), notification(models.NotificationCheckoutUpdated))

	require.NoError(t, err)
	assert.Empty(t, h.session.checkoutLoads)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestHandleNotification_RefreshFailureIsRetried(t *testing.T) {
	h := newHarness(t)
	h.expectUnprocessed()
	h.session.err = errors.New("storefront unavailable")

	err := h.worker.HandleNotification(context.Background(), notification(models.NotificationCheckoutUpdated))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to refresh session")
	assert.False(t, h.redis.Exists("idempotency:notification:evt-1"))
	assert.False(t, h.redis.Exists("lock:notification:evt-1"))
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestHandleNotification_LockedElsewhere(t *testing.T) {
	h := newHarness(t)
	h.expectUnprocessed()
	require.NoError(t, h.redis.Set("lock:notification:evt-1", "1"))

	err := h.worker.HandleNotification(context.Background(), notification(models.NotificationCheckoutUpdated))

	require.NoError(t, err)
	assert.Empty(t, h.session.checkoutLoads)
}

func TestHandleNotification_IgnoresOtherCheckouts(t *testing.T) {
	h := newHarness(t)
	n := notification(models.NotificationCheckoutUpdated)
	n.CheckoutID = "another"

	err := h.worker.HandleNotification(context.Background(), n)

	require.NoError(t, err)
	assert.Empty(t, h.session.checkoutLoads)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestHandleNotification_WithoutDedupStores(t *testing.T) {
	session := &fakeSession{loaded: fixture.StoreState()}
	w := NewNotificationWorker(nil, session, nil, nil, "")

	require.NoError(t, w.HandleNotification(context.Background(), notification(models.NotificationCheckoutUpdated)))
	require.NoError(t, w.HandleNotification(context.Background(), notification(models.NotificationCheckoutUpdated)))

	assert.Equal(t, []string{fixture.CheckoutID, fixture.CheckoutID}, session.checkoutLoads)
}

func TestHandleNotification_UnconfiguredFollowsLoadedCheckout(t *testing.T) {
	tests := []struct {
		name   string
		loaded state.StoreState
	}{
		{"other checkout loaded", fixture.StoreState()},
		{"nothing loaded", state.StoreState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &fakeSession{loaded: tt.loaded}
			w := NewNotificationWorker(nil, session, nil, nil, "")

			n := notification(models.NotificationCheckoutUpdated)
			n.CheckoutID = "someone-elses-checkout"

			require.NoError(t, w.HandleNotification(context.Background(), n))
			assert.Empty(t, session.checkoutLoads)
			assert.Zero(t, session.orderLoads)
		})
	}
}
