// Package store holds the state tree of one checkout session and applies
// lifecycle signals to it.
package store

import (
	"context"
	"sync"

	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

// ReadableStore exposes the current state snapshot to workflows
type ReadableStore interface {
	GetState() state.StoreState
}

// Emitter hands a signal to the store
type Emitter func(signal.Signal)

// Action is a deferred workflow. It does nothing until the store runs it,
// then emits lifecycle signals in order and returns the error that ended it.
type Action func(ctx context.Context, store ReadableStore, emit Emitter) error

// Subscriber is notified with the new state after every applied signal.
// Subscribers run while the dispatch lock is held and must not dispatch.
type Subscriber func(state.StoreState, signal.Signal)

type subscription struct {
	id int
	fn Subscriber
}

type Store struct {
	mu    sync.RWMutex
	state state.StoreState

	// dispatchMu serializes signal application across workflows
	dispatchMu sync.Mutex
	reduce     state.Reducer

	subMu       sync.Mutex
	subscribers []subscription
	nextSubID   int

	logger *zap.Logger
}

// New creates a store with the given initial state and slice reducers
func New(initial state.StoreState, reducers ...state.Reducer) *Store {
	return &Store{
		state:  initial,
		reduce: combine(reducers),
		logger: util.GetLogger(),
	}
}

func combine(reducers []state.Reducer) state.Reducer {
	return func(s state.StoreState, sig signal.Signal) state.StoreState {
		for _, r := range reducers {
			s = r(s, sig)
		}
		return s
	}
}

// GetState returns the current state snapshot
func (s *Store) GetState() state.StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()

		remaining := make([]subscription, 0, len(s.subscribers))
		for _, sub := range s.subscribers {
			if sub.id != id {
				remaining = append(remaining, sub)
			}
		}
		s.subscribers = remaining
	}
}

// Dispatch runs an action to completion and returns the resulting state.
// The returned error is the one that ended the workflow, if any. Every signal
// the action emits is applied, including the failure that follows ctx
// expiring, so no slice is left loading.
func (s *Store) Dispatch(ctx context.Context, action Action) (state.StoreState, error) {
	err := action(ctx, s, s.apply)
	return s.GetState(), err
}

// Start runs an action in the background. Cancelling the task aborts the
// action and stops its further signals from being applied. Expiry of ctx
// alone does not suppress signals.
func (s *Store) Start(ctx context.Context, action Action) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(task.done)
		defer cancel()
		task.err = action(ctx, s, s.taskEmitter(task))
	}()

	return task
}

func (s *Store) taskEmitter(task *Task) Emitter {
	return func(sig signal.Signal) {
		s.dispatchMu.Lock()
		defer s.dispatchMu.Unlock()

		if task.cancelled.Load() {
			s.logger.Debug("Dropping signal of cancelled task", zap.String("type", sig.Type.String()))
			return
		}
		s.applyLocked(sig)
	}
}

func (s *Store) apply(sig signal.Signal) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.applyLocked(sig)
}

// applyLocked requires dispatchMu
func (s *Store) applyLocked(sig signal.Signal) {
	s.mu.Lock()
	next := s.reduce(s.state, sig)
	s.state = next
	s.mu.Unlock()

	util.SignalsAppliedTotal.WithLabelValues(sig.Type.String()).Inc()

	for _, sub := range s.snapshotSubscribers() {
		sub.fn(next, sig)
	}
}

func (s *Store) snapshotSubscribers() []subscription {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return s.subscribers
}

// Concat composes actions sequentially. Each action starts only after the
// previous one returned without error; the first error aborts the chain.
func Concat(actions ...Action) Action {
	return func(ctx context.Context, store ReadableStore, emit Emitter) error {
		for _, action := range actions {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := action(ctx, store, emit); err != nil {
				return err
			}
		}
		return nil
	}
}
