package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"checkout-sdk/internal/fixture"
	"checkout-sdk/internal/reducer"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return New(state.StoreState{}, reducer.All()...)
}

// recorder collects applied signal types in order
type recorder struct {
	mu    sync.Mutex
	types []signal.Type
}

func (r *recorder) record(_ state.StoreState, sig signal.Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, sig.Type)
}

func (r *recorder) all() []signal.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]signal.Type(nil), r.types...)
}

func emitAll(signals ...signal.Signal) Action {
	return func(ctx context.Context, _ ReadableStore, emit Emitter) error {
		for _, sig := range signals {
			emit(sig)
		}
		return nil
	}
}

func failWith(err error, signals ...signal.Signal) Action {
	return func(ctx context.Context, _ ReadableStore, emit Emitter) error {
		for _, sig := range signals {
			emit(sig)
		}
		return err
	}
}

func TestDispatchAppliesSignalsInOrder(t *testing.T) {
	s := newTestStore()
	rec := &recorder{}
	s.Subscribe(rec.record)

	checkout := fixture.Checkout()
	result, err := s.Dispatch(context.Background(), emitAll(
		signal.New(signal.LoadCheckoutRequested, nil),
		signal.New(signal.LoadCheckoutSucceeded, &checkout),
	))

	require.NoError(t, err)
	assert.Equal(t, []signal.Type{signal.LoadCheckoutRequested, signal.LoadCheckoutSucceeded}, rec.all())
	assert.Equal(t, &checkout, result.Checkout.Data)
	assert.False(t, result.Checkout.Statuses.IsLoading)
	assert.Equal(t, result, s.GetState())
}

func TestDispatchReturnsWorkflowError(t *testing.T) {
	s := newTestStore()
	remote := errors.New("boom")

	result, err := s.Dispatch(context.Background(), failWith(remote,
		signal.New(signal.LoadOrderRequested, nil),
		signal.NewError(signal.LoadOrderFailed, remote),
	))

	assert.ErrorIs(t, err, remote)
	assert.Equal(t, remote, result.Order.Errors.LoadError)
}

func TestSubscriberSeesStateAfterSignal(t *testing.T) {
	s := newTestStore()
	var loading []bool
	s.Subscribe(func(st state.StoreState, _ signal.Signal) {
		loading = append(loading, st.Checkout.Statuses.IsLoading)
	})

	checkout := fixture.Checkout()
	_, err := s.Dispatch(context.Background(), emitAll(
		signal.New(signal.LoadCheckoutRequested, nil),
		signal.New(signal.LoadCheckoutSucceeded, &checkout),
	))

	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, loading)
}

func TestUnsubscribe(t *testing.T) {
	s := newTestStore()
	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.record)

	_, _ = s.Dispatch(context.Background(), emitAll(signal.New(signal.LoadConfigRequested, nil)))
	unsubscribe()
	_, _ = s.Dispatch(context.Background(), emitAll(signal.New(signal.LoadConfigRequested, nil)))

	assert.Len(t, rec.all(), 1)
}

func TestConcatRunsSecondOnlyAfterFirstSucceeds(t *testing.T) {
	s := newTestStore()
	rec := &recorder{}
	s.Subscribe(rec.record)

	order := fixture.Order()
	_, err := s.Dispatch(context.Background(), Concat(
		emitAll(signal.New(signal.SubmitPaymentRequested, nil), signal.New(signal.SubmitPaymentSucceeded, nil)),
		emitAll(signal.New(signal.LoadOrderRequested, nil), signal.New(signal.LoadOrderSucceeded, &order)),
	))

	require.NoError(t, err)
	assert.Equal(t, []signal.Type{
		signal.SubmitPaymentRequested,
		signal.SubmitPaymentSucceeded,
		signal.LoadOrderRequested,
		signal.LoadOrderSucceeded,
	}, rec.all())
}

func TestConcatAbortsOnFirstError(t *testing.T) {
	s := newTestStore()
	rec := &recorder{}
	s.Subscribe(rec.record)
	remote := errors.New("declined")

	secondRan := false
	second := func(ctx context.Context, _ ReadableStore, emit Emitter) error {
		secondRan = true
		return nil
	}

	_, err := s.Dispatch(context.Background(), Concat(
		failWith(remote, signal.New(signal.SubmitPaymentRequested, nil), signal.NewError(signal.SubmitPaymentFailed, remote)),
		second,
	))

	assert.ErrorIs(t, err, remote)
	assert.False(t, secondRan)
	assert.Equal(t, []signal.Type{signal.SubmitPaymentRequested, signal.SubmitPaymentFailed}, rec.all())
}

func TestConcatSecondActionReadsFreshState(t *testing.T) {
	s := newTestStore()
	checkout := fixture.Checkout()

	var seen *string
	_, err := s.Dispatch(context.Background(), Concat(
		emitAll(signal.New(signal.LoadCheckoutSucceeded, &checkout)),
		func(ctx context.Context, store ReadableStore, emit Emitter) error {
			if data := store.GetState().Checkout.Data; data != nil {
				seen = &data.ID
			}
			return nil
		},
	))

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, fixture.CheckoutID, *seen)
}

func TestCancelledTaskSignalsAreDropped(t *testing.T) {
	s := newTestStore()
	rec := &recorder{}
	s.Subscribe(rec.record)

	release := make(chan struct{})
	task := s.Start(context.Background(), func(ctx context.Context, _ ReadableStore, emit Emitter) error {
		emit(signal.New(signal.LoadCheckoutRequested, nil))
		<-release
		emit(signal.New(signal.LoadCheckoutSucceeded, nil))
		return nil
	})

	require.Eventually(t, func() bool { return len(rec.all()) == 1 }, time.Second, 5*time.Millisecond)
	task.Cancel()
	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, task.Wait(ctx))

	assert.Equal(t, []signal.Type{signal.LoadCheckoutRequested}, rec.all())
	assert.True(t, s.GetState().Checkout.Statuses.IsLoading)
}

func TestDispatchAppliesFailureAfterContextExpires(t *testing.T) {
	s := newTestStore()
	rec := &recorder{}
	s.Subscribe(rec.record)

	ctx, cancel := context.WithCancel(context.Background())
	st, err := s.Dispatch(ctx, func(ctx context.Context, _ ReadableStore, emit Emitter) error {
		emit(signal.New(signal.LoadCheckoutRequested, nil))
		cancel()
		<-ctx.Done()
		emit(signal.NewError(signal.LoadCheckoutFailed, ctx.Err()))
		return ctx.Err()
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []signal.Type{signal.LoadCheckoutRequested, signal.LoadCheckoutFailed}, rec.all())
	assert.False(t, st.Checkout.Statuses.IsLoading)
	assert.ErrorIs(t, st.Checkout.Errors.LoadError, context.Canceled)
}

func TestStartAppliesFailureWhenParentContextExpires(t *testing.T) {
	s := newTestStore()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	task := s.Start(ctx, func(ctx context.Context, _ ReadableStore, emit Emitter) error {
		emit(signal.New(signal.LoadCheckoutRequested, nil))
		<-ctx.Done()
		emit(signal.NewError(signal.LoadCheckoutFailed, ctx.Err()))
		return ctx.Err()
	})

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	assert.ErrorIs(t, task.Wait(waitCtx), context.DeadlineExceeded)

	st := s.GetState()
	assert.False(t, st.Checkout.Statuses.IsLoading)
	assert.ErrorIs(t, st.Checkout.Errors.LoadError, context.DeadlineExceeded)
}

func TestTaskDone(t *testing.T) {
	s := newTestStore()
	remote := errors.New("nope")
	task := s.Start(context.Background(), failWith(remote))

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
	}
	assert.ErrorIs(t, task.Wait(context.Background()), remote)
}

func TestConcurrentWorkflowsAreSerialized(t *testing.T) {
	s := newTestStore()
	rec := &recorder{}
	s.Subscribe(rec.record)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Dispatch(context.Background(), emitAll(
				signal.New(signal.LoadCountriesRequested, nil),
				signal.New(signal.LoadCountriesSucceeded, fixture.Countries()),
			))
		}()
	}
	wg.Wait()

	assert.Len(t, rec.all(), workers*2)
	assert.False(t, s.GetState().Countries.Statuses.IsLoading)
	assert.Len(t, s.GetState().Countries.Data, 3)
}
