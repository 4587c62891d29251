package action

import (
	"context"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/transport"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

type OrderActionCreator struct {
	sender *sender.OrderRequestSender
	logger *zap.Logger
}

// NewOrderActionCreator creates a new order action creator
func NewOrderActionCreator(s *sender.OrderRequestSender) *OrderActionCreator {
	return &OrderActionCreator{
		sender: s,
		logger: util.GetLogger(),
	}
}

// LoadOrder loads the order with the given id
func (c *OrderActionCreator) LoadOrder(orderID int64, opts sender.Options) store.Action {
	return instrument(c.logger, "LoadOrder", c.loadOrder(orderID, opts))
}

// LoadCurrentOrder loads the order placed for the current checkout
func (c *OrderActionCreator) LoadCurrentOrder(opts sender.Options) store.Action {
	return instrument(c.logger, "LoadCurrentOrder", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		orderID, ok := currentOrderID(st.GetState())
		if !ok {
			return sdkerr.NewMissingDataError("load current order", "orderId")
		}
		return c.loadOrder(orderID, opts)(ctx, st, emit)
	})
}

func (c *OrderActionCreator) loadOrder(orderID int64, opts sender.Options) store.Action {
	return func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		if orderID <= 0 {
			return sdkerr.NewMissingDataError("load order", "orderId")
		}

		emit(signal.New(signal.LoadOrderRequested, nil))

		resp, err := c.sender.LoadOrder(ctx, orderID, opts)
		if err != nil {
			return fail(emit, signal.LoadOrderFailed, err)
		}

		emit(signal.New(signal.LoadOrderSucceeded, &resp.Body))
		return nil
	}
}

// SubmitOrder places the order for the current cart. Payment data in the
// payload is never sent with the order.
func (c *OrderActionCreator) SubmitOrder(payload models.OrderRequestBody, opts sender.Options) store.Action {
	return instrument(c.logger, "SubmitOrder", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		checkout := selector.New(st.GetState()).Checkout.GetCheckout()
		if checkout == nil || checkout.Cart.ID == "" {
			return sdkerr.NewMissingDataError("submit order", "checkout", "cart.id")
		}

		body := models.InternalOrderRequestBody{
			CartID:          checkout.Cart.ID,
			CustomerMessage: payload.CustomerMessage,
			UseStoreCredit:  payload.UseStoreCredit,
			ExternalSource:  payload.ExternalSource,
		}
		if payload.Payment != nil && payload.Payment.MethodID != "" {
			body.Payment = &models.InternalOrderPaymentRequest{
				Name:    payload.Payment.MethodID,
				Gateway: payload.Payment.GatewayID,
			}
		}

		emit(signal.New(signal.SubmitOrderRequested, nil))

		resp, err := c.sender.SubmitOrder(ctx, body, opts)
		if err != nil {
			return fail(emit, signal.SubmitOrderFailed, err)
		}

		emit(signal.NewWithMeta(signal.SubmitOrderSucceeded, &resp.Body.Data.Order, submittedOrderMeta(resp)))
		return nil
	})
}

// FinalizeOrder completes an order paid offsite and then reloads it. orderID
// defaults to the current order when zero.
func (c *OrderActionCreator) FinalizeOrder(orderID int64, opts sender.Options) store.Action {
	finalize := func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		id := orderID
		if id <= 0 {
			id, _ = currentOrderID(st.GetState())
		}
		if id <= 0 {
			return sdkerr.NewMissingDataError("finalize order", "orderId")
		}

		emit(signal.New(signal.FinalizeOrderRequested, nil))

		resp, err := c.sender.FinalizeOrder(ctx, id, opts)
		if err != nil {
			return fail(emit, signal.FinalizeOrderFailed, err)
		}

		emit(signal.NewWithMeta(signal.FinalizeOrderSucceeded, &resp.Body.Data.Order, submittedOrderMeta(resp)))

		return c.loadOrder(id, opts)(ctx, st, emit)
	}

	return instrument(c.logger, "FinalizeOrder", finalize)
}

func submittedOrderMeta(resp transport.Response[models.SubmitOrderResponse]) *models.OrderMeta {
	return &models.OrderMeta{
		Token:             resp.Headers.Get(sender.OrderTokenHeader),
		DeviceFingerprint: resp.Body.Meta.DeviceFingerprint,
	}
}

// currentOrderID resolves the order of the session from the checkout,
// falling back to the order meta of a submission
func currentOrderID(s state.StoreState) (int64, bool) {
	sel := selector.New(s)
	if checkout := sel.Checkout.GetCheckout(); checkout != nil && checkout.OrderID != nil && *checkout.OrderID > 0 {
		return *checkout.OrderID, true
	}
	if meta := sel.Order.GetOrderMeta(); meta != nil && meta.OrderID != nil && *meta.OrderID > 0 {
		return *meta.OrderID, true
	}
	return 0, false
}
