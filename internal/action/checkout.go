package action

import (
	"context"

	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

type CheckoutActionCreator struct {
	sender *sender.CheckoutRequestSender
	logger *zap.Logger
}

// NewCheckoutActionCreator creates a new checkout action creator
func NewCheckoutActionCreator(s *sender.CheckoutRequestSender) *CheckoutActionCreator {
	return &CheckoutActionCreator{
		sender: s,
		logger: util.GetLogger(),
	}
}

// LoadCheckout loads the checkout with the given id, or reloads the current
// one when id is empty
func (c *CheckoutActionCreator) LoadCheckout(id string, opts sender.Options) store.Action {
	return instrument(c.logger, "LoadCheckout", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		checkoutID := id
		if checkoutID == "" {
			if checkout := selector.New(st.GetState()).Checkout.GetCheckout(); checkout != nil {
				checkoutID = checkout.ID
			}
		}
		if checkoutID == "" {
			return sdkerr.NewMissingDataError("load checkout", "checkout.id")
		}

		emit(signal.New(signal.LoadCheckoutRequested, nil))

		resp, err := c.sender.LoadCheckout(ctx, checkoutID, opts)
		if err != nil {
			return fail(emit, signal.LoadCheckoutFailed, err)
		}

		emit(signal.New(signal.LoadCheckoutSucceeded, &resp.Body))
		return nil
	})
}
