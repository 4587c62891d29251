package broker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"checkout-sdk/internal/fixture"
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	written  chan struct{}
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{written: make(chan struct{}, 16)}
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	w.written <- struct{}{}
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func (w *fakeWriter) Messages() []kafka.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]kafka.Message(nil), w.messages...)
}

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func TestNewSignalEvent(t *testing.T) {
	st := fixture.StoreState()

	event := NewSignalEvent(st, signal.New(signal.LoadCheckoutRequested, nil))
	assert.Equal(t, "LOAD_CHECKOUT_REQUESTED", event.EventType)
	assert.Equal(t, fixture.CheckoutID, event.CheckoutID)
	assert.NotEmpty(t, event.EventID)
	assert.False(t, event.Error)

	failed := NewSignalEvent(state.StoreState{}, signal.NewError(signal.LoadCheckoutFailed, errors.New("boom")))
	assert.True(t, failed.Error)
	assert.Equal(t, "boom", failed.Payload)
	assert.Empty(t, failed.CheckoutID)
}

func TestSignalPublisher_PublishesQueuedSignals(t *testing.T) {
	writer := newFakeWriter()
	publisher := NewSignalPublisher(NewProducerWithWriter(writer), 4)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- publisher.Run(ctx) }()

	publisher.Observe(fixture.StoreState(), signal.New(signal.LoadConfigSucceeded, nil))

	select {
	case <-writer.written:
	case <-time.After(2 * time.Second):
		t.Fatal("signal was not published")
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	messages := writer.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "checkout-"+fixture.CheckoutID, string(messages[0].Key))

	var event models.SignalEvent
	require.NoError(t, json.Unmarshal(messages[0].Value, &event))
	assert.Equal(t, "LOAD_CONFIG_SUCCEEDED", event.EventType)
}

func TestSignalPublisher_DropsWhenQueueFull(t *testing.T) {
	publisher := NewSignalPublisher(NewProducerWithWriter(newFakeWriter()), 1)

	publisher.Observe(state.StoreState{}, signal.New(signal.LoadConfigRequested, nil))
	publisher.Observe(state.StoreState{}, signal.New(signal.LoadConfigSucceeded, nil))

	assert.Len(t, publisher.events, 1)
}

func TestProducer_WrapsWriteErrors(t *testing.T) {
	writer := newFakeWriter()
	writer.err = errors.New("broker down")

	err := NewProducerWithWriter(writer).PublishEvent(context.Background(), "k", map[string]string{"a": "b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write message to kafka")
}

func notificationMessage(t *testing.T, offset int64, n models.Notification) kafka.Message {
	raw, err := json.Marshal(n)
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Value: raw}
}

func TestConsumer_CommitsHandledMessagesOnly(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		notificationMessage(t, 1, models.Notification{BaseEvent: models.BaseEvent{EventID: "e1", EventType: models.NotificationCheckoutUpdated}}),
		notificationMessage(t, 2, models.Notification{BaseEvent: models.BaseEvent{EventID: "e2", EventType: models.NotificationOrderStatusChanged}}),
		{Offset: 3, Value: []byte("not json")},
		notificationMessage(t, 4, models.Notification{BaseEvent: models.BaseEvent{EventID: "e4", EventType: "UNKNOWN"}}),
	}}

	var handled []string
	handler := NewNotificationHandler()
	handler.On(models.NotificationCheckoutUpdated, func(ctx context.Context, n *models.Notification) error {
		handled = append(handled, n.EventID)
		return nil
	})
	handler.On(models.NotificationOrderStatusChanged, func(ctx context.Context, n *models.Notification) error {
		return errors.New("order reload failed")
	})

	err := NewConsumerWithReader(reader, "checkout-notifications").StartConsuming(context.Background(), handler.HandleMessage)

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"e1"}, handled)
	assert.Equal(t, []int64{1, 4}, reader.committed)
}
