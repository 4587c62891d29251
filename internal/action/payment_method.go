package action

import (
	"context"

	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

type PaymentMethodActionCreator struct {
	sender *sender.PaymentMethodRequestSender
	logger *zap.Logger
}

// NewPaymentMethodActionCreator creates a new payment method action creator
func NewPaymentMethodActionCreator(s *sender.PaymentMethodRequestSender) *PaymentMethodActionCreator {
	return &PaymentMethodActionCreator{
		sender: s,
		logger: util.GetLogger(),
	}
}

// LoadPaymentMethods loads the payment method catalog and its session meta
func (c *PaymentMethodActionCreator) LoadPaymentMethods(opts sender.Options) store.Action {
	return instrument(c.logger, "LoadPaymentMethods", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		emit(signal.New(signal.LoadPaymentMethodsRequested, nil))

		resp, err := c.sender.LoadPaymentMethods(ctx, opts)
		if err != nil {
			return fail(emit, signal.LoadPaymentMethodsFailed, err)
		}

		emit(signal.NewWithMeta(signal.LoadPaymentMethodsSucceeded, resp.Body, sender.PaymentMethodsMetaFromHeaders(resp.Headers)))
		return nil
	})
}

// LoadPaymentMethod loads one method and merges it into the catalog.
// Every signal carries methodID as meta.
func (c *PaymentMethodActionCreator) LoadPaymentMethod(methodID, gatewayID string, opts sender.Options) store.Action {
	return instrument(c.logger, "LoadPaymentMethod", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		if methodID == "" {
			return sdkerr.NewMissingDataError("load payment method", "methodId")
		}

		emit(signal.NewWithMeta(signal.LoadPaymentMethodRequested, nil, methodID))

		resp, err := c.sender.LoadPaymentMethod(ctx, methodID, gatewayID, opts)
		if err != nil {
			failed := signal.NewError(signal.LoadPaymentMethodFailed, err)
			failed.Meta = methodID
			emit(failed)
			return err
		}

		emit(signal.NewWithMeta(signal.LoadPaymentMethodSucceeded, &resp.Body, methodID))
		return nil
	})
}
