package action

import (
	"context"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

const includeShippingOptions = "consignments.availableShippingOptions"

// ConsignmentActionCreator manages the shipping address and option of a checkout
type ConsignmentActionCreator struct {
	consignments *sender.ConsignmentRequestSender
	checkouts    *sender.CheckoutRequestSender
	logger       *zap.Logger
}

// NewConsignmentActionCreator creates a new consignment action creator
func NewConsignmentActionCreator(consignments *sender.ConsignmentRequestSender, checkouts *sender.CheckoutRequestSender) *ConsignmentActionCreator {
	return &ConsignmentActionCreator{
		consignments: consignments,
		checkouts:    checkouts,
		logger:       util.GetLogger(),
	}
}

// UpdateAddress ships the cart's physical items to address. The first
// consignment is updated when one exists, otherwise one is created.
func (c *ConsignmentActionCreator) UpdateAddress(address models.Address, opts sender.Options) store.Action {
	return instrument(c.logger, "UpdateShippingAddress", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		sel := selector.New(st.GetState())
		checkout := sel.Checkout.GetCheckout()
		cart := sel.Cart.GetCart()

		if checkout == nil || checkout.ID == "" || cart == nil {
			return sdkerr.NewMissingDataError("update shipping address", "checkout.id", "cart")
		}
		if err := validate.Struct(address); err != nil {
			return sdkerr.NewInvalidArgumentError("update shipping address", err)
		}

		lineItems := consignmentLineItems(*cart)

		if consignments := sel.Consignments.GetConsignments(); len(consignments) > 0 {
			emit(signal.New(signal.UpdateConsignmentRequested, nil))

			resp, err := c.consignments.UpdateConsignment(ctx, checkout.ID, models.ConsignmentUpdateRequestBody{
				ID:              consignments[0].ID,
				ShippingAddress: &address,
				LineItems:       lineItems,
			}, opts)
			if err != nil {
				return fail(emit, signal.UpdateConsignmentFailed, err)
			}

			emit(signal.New(signal.UpdateConsignmentSucceeded, &resp.Body))
			return nil
		}

		emit(signal.New(signal.CreateConsignmentsRequested, nil))

		resp, err := c.consignments.CreateConsignments(ctx, checkout.ID, []models.ConsignmentCreateRequestBody{{
			ShippingAddress: address,
			LineItems:       lineItems,
		}}, opts)
		if err != nil {
			return fail(emit, signal.CreateConsignmentsFailed, err)
		}

		emit(signal.New(signal.CreateConsignmentsSucceeded, &resp.Body))
		return nil
	})
}

// SelectShippingOption selects optionID on the consignment of the current
// shipping address
func (c *ConsignmentActionCreator) SelectShippingOption(optionID string, opts sender.Options) store.Action {
	return instrument(c.logger, "SelectShippingOption", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		sel := selector.New(st.GetState())
		checkout := sel.Checkout.GetCheckout()
		address := sel.ShippingAddress.GetShippingAddress()

		if checkout == nil || checkout.ID == "" || address == nil || address.ID == "" {
			return sdkerr.NewMissingDataError("select shipping option", "checkout.id", "shippingAddress.id")
		}
		if optionID == "" {
			return sdkerr.NewMissingDataError("select shipping option", "shippingOptionId")
		}

		emit(signal.New(signal.UpdateShippingOptionRequested, nil))

		resp, err := c.consignments.UpdateConsignment(ctx, checkout.ID, models.ConsignmentUpdateRequestBody{
			ID:               address.ID,
			ShippingOptionID: optionID,
		}, opts)
		if err != nil {
			return fail(emit, signal.UpdateShippingOptionFailed, err)
		}

		emit(signal.New(signal.UpdateShippingOptionSucceeded, &resp.Body))
		return nil
	})
}

// LoadShippingOptions reloads the checkout with the available shipping options
func (c *ConsignmentActionCreator) LoadShippingOptions(opts sender.Options) store.Action {
	return instrument(c.logger, "LoadShippingOptions", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		checkout := selector.New(st.GetState()).Checkout.GetCheckout()
		if checkout == nil || checkout.ID == "" {
			return sdkerr.NewMissingDataError("load shipping options", "checkout.id")
		}

		emit(signal.New(signal.LoadShippingOptionsRequested, nil))

		withOptions := opts
		withOptions.Include = append(append([]string{}, opts.Include...), includeShippingOptions)

		resp, err := c.checkouts.LoadCheckout(ctx, checkout.ID, withOptions)
		if err != nil {
			return fail(emit, signal.LoadShippingOptionsFailed, err)
		}

		emit(signal.New(signal.LoadShippingOptionsSucceeded, &resp.Body))
		return nil
	})
}

func consignmentLineItems(cart models.Cart) []models.ConsignmentLineItem {
	items := make([]models.ConsignmentLineItem, 0, len(cart.LineItems.PhysicalItems))
	for _, item := range cart.LineItems.PhysicalItems {
		items = append(items, models.ConsignmentLineItem{ItemID: item.ID, Quantity: item.Quantity})
	}
	return items
}
