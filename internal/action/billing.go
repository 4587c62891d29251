package action

import (
	"context"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/transport"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

type BillingAddressActionCreator struct {
	sender *sender.BillingAddressRequestSender
	logger *zap.Logger
}

// NewBillingAddressActionCreator creates a new billing address action creator
func NewBillingAddressActionCreator(s *sender.BillingAddressRequestSender) *BillingAddressActionCreator {
	return &BillingAddressActionCreator{
		sender: s,
		logger: util.GetLogger(),
	}
}

// UpdateAddress sets the billing address, replacing the existing one if any
func (c *BillingAddressActionCreator) UpdateAddress(address models.Address, opts sender.Options) store.Action {
	return instrument(c.logger, "UpdateBillingAddress", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		sel := selector.New(st.GetState())
		checkout := sel.Checkout.GetCheckout()
		if checkout == nil || checkout.ID == "" {
			return sdkerr.NewMissingDataError("update billing address", "checkout.id")
		}
		if err := validate.Struct(address); err != nil {
			return sdkerr.NewInvalidArgumentError("update billing address", err)
		}

		if existing := sel.BillingAddress.GetBillingAddress(); existing != nil {
			address.ID = existing.ID
		}

		emit(signal.New(signal.UpdateBillingAddressRequested, nil))

		resp, err := c.save(ctx, checkout.ID, address, opts)
		if err != nil {
			return fail(emit, signal.UpdateBillingAddressFailed, err)
		}

		emit(signal.New(signal.UpdateBillingAddressSucceeded, &resp.Body))
		return nil
	})
}

// ContinueAsGuest attaches a guest email to the billing address
func (c *BillingAddressActionCreator) ContinueAsGuest(credentials models.GuestCredentials, opts sender.Options) store.Action {
	return instrument(c.logger, "ContinueAsGuest", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		sel := selector.New(st.GetState())
		checkout := sel.Checkout.GetCheckout()
		if checkout == nil || checkout.ID == "" {
			return sdkerr.NewMissingDataError("continue as guest", "checkout.id")
		}
		if err := validate.Struct(credentials); err != nil {
			return sdkerr.NewInvalidArgumentError("continue as guest", err)
		}

		address := models.Address{}
		if existing := sel.BillingAddress.GetBillingAddress(); existing != nil {
			address = *existing
		}
		address.Email = credentials.Email

		emit(signal.New(signal.ContinueAsGuestRequested, nil))

		resp, err := c.save(ctx, checkout.ID, address, opts)
		if err != nil {
			return fail(emit, signal.ContinueAsGuestFailed, err)
		}

		emit(signal.New(signal.ContinueAsGuestSucceeded, &resp.Body))
		return nil
	})
}

func (c *BillingAddressActionCreator) save(ctx context.Context, checkoutID string, address models.Address, opts sender.Options) (transport.Response[models.Checkout], error) {
	if address.ID == "" {
		return c.sender.CreateAddress(ctx, checkoutID, address, opts)
	}
	return c.sender.UpdateAddress(ctx, checkoutID, address, opts)
}
