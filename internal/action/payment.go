package action

import (
	"context"
	"fmt"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

// PaymentSource identifies this client to the payment gateway
const PaymentSource = "checkout-sdk"

type PaymentActionCreator struct {
	sender *sender.PaymentRequestSender
	orders *OrderActionCreator
	logger *zap.Logger
}

// NewPaymentActionCreator creates a new payment action creator
func NewPaymentActionCreator(s *sender.PaymentRequestSender, orders *OrderActionCreator) *PaymentActionCreator {
	return &PaymentActionCreator{
		sender: s,
		orders: orders,
		logger: util.GetLogger(),
	}
}

// SubmitPayment sends the payment and, once it succeeded, reloads the
// current order. A failed payment aborts before the order is loaded.
func (c *PaymentActionCreator) SubmitPayment(payment models.Payment, opts sender.Options) store.Action {
	submit := instrument(c.logger, "SubmitPayment", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		body, err := c.paymentRequestBody(payment, st.GetState(), true)
		if err != nil {
			return err
		}

		emit(signal.New(signal.SubmitPaymentRequested, nil))

		resp, err := c.sender.SubmitPayment(ctx, body, opts)
		if err != nil {
			return fail(emit, signal.SubmitPaymentFailed, err)
		}

		emit(signal.New(signal.SubmitPaymentSucceeded, &resp.Body))
		return nil
	})

	return store.Concat(submit, c.orders.LoadCurrentOrder(opts))
}

// InitializeOffsitePayment starts the hosted payment flow of the payment's
// method. Hosted methods collect their data offsite, so none is required.
func (c *PaymentActionCreator) InitializeOffsitePayment(payment models.Payment, opts sender.Options) store.Action {
	return instrument(c.logger, "InitializeOffsitePayment", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		body, err := c.paymentRequestBody(payment, st.GetState(), false)
		if err != nil {
			return err
		}

		emit(signal.New(signal.InitializeOffsitePaymentRequested, nil))

		resp, err := c.sender.InitializeOffsitePayment(ctx, body, opts)
		if err != nil {
			return fail(emit, signal.InitializeOffsitePaymentFailed, err)
		}

		emit(signal.New(signal.InitializeOffsitePaymentSucceeded, &resp.Body))
		return nil
	})
}

// paymentRequestBody assembles the gateway request from the state snapshot.
// The auth token of a vaulted instrument is "<order token>, <vault token>";
// the gateway splits it on the comma.
func (c *PaymentActionCreator) paymentRequestBody(payment models.Payment, s state.StoreState, requireData bool) (models.PaymentRequestBody, error) {
	sel := selector.New(s)
	facade := selector.NewCheckoutStoreSelector(s)

	token := sel.Payment.GetPaymentToken()
	authToken := token
	if instrumentMeta := sel.Instruments.GetInstrumentsMeta(); instrumentMeta != nil && payment.PaymentData != nil && models.IsVaultedInstrument(payment.PaymentData) {
		authToken = fmt.Sprintf("%s, %s", token, instrumentMeta.VaultAccessToken)
	}

	if requireData && (token == "" || payment.PaymentData == nil) {
		return models.PaymentRequestBody{}, sdkerr.NewMissingDataError("submit payment", "authToken", "paymentData")
	}
	if token == "" {
		return models.PaymentRequestBody{}, sdkerr.NewMissingDataError("initialize offsite payment", "authToken")
	}

	body := models.PaymentRequestBody{
		AuthToken:       authToken,
		BillingAddress:  facade.GetBillingAddress(),
		Cart:            facade.GetCart(),
		Customer:        sel.Customer.GetCustomer(),
		Order:           facade.GetOrder(),
		OrderMeta:       sel.Order.GetOrderMeta(),
		Payment:         payment.PaymentData,
		ShippingAddress: facade.GetShippingAddress(),
		ShippingOption:  facade.GetSelectedShippingOption(),
		Source:          PaymentSource,
	}

	if method := sel.PaymentMethods.GetPaymentMethod(payment.MethodID, payment.GatewayID); method != nil {
		normalized := method.Normalize()
		body.PaymentMethod = &normalized
	}
	if meta := sel.PaymentMethods.GetPaymentMethodsMeta(); meta != nil {
		body.QuoteMeta.Request = meta.Request
	}
	if config := sel.Config.GetStoreConfig(); config != nil {
		body.Store = config.StoreProfile.Summary()
	}

	return body, nil
}
