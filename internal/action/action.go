// Package action builds the checkout workflows. Every creator method returns
// a store.Action that checks its preconditions against the state it runs on,
// emits a Requested signal, sends its request and ends with exactly one
// Succeeded or Failed signal.
package action

import (
	"context"
	"time"

	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// instrument wraps a workflow with a span, duration metric and logging
func instrument(logger *zap.Logger, operation string, fn store.Action) store.Action {
	return func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		ctx, span := util.StartSpan(ctx, "Action."+operation)
		start := time.Now()

		err := fn(ctx, st, emit)

		outcome := "succeeded"
		switch {
		case err == nil:
			logger.Debug("Workflow completed", zap.String("operation", operation))
		case sdkerr.IsPrecondition(err):
			outcome = "precondition_failed"
			util.PreconditionFailuresTotal.WithLabelValues(operation).Inc()
			logger.Warn("Workflow rejected", zap.String("operation", operation), zap.Error(err))
		default:
			outcome = "failed"
			logger.Warn("Workflow failed", zap.String("operation", operation), zap.Error(err))
		}

		util.WorkflowDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
		util.EndSpan(span, err)
		return err
	}
}

// fail emits the failure signal of a workflow and returns err
func fail(emit store.Emitter, t signal.Type, err error) error {
	emit(signal.NewError(t, err))
	return err
}
