package service

import (
	"context"
	"errors"

	"checkout-sdk/internal/action"
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/state"
	"checkout-sdk/internal/store"
)

// ErrFinalizationNotRequired is returned when the order of the session
// cannot or need not be finalized
var ErrFinalizationNotRequired = errors.New("order finalization not required")

// PaymentStrategy sequences the workflows that place an order with one
// kind of payment method
type PaymentStrategy interface {
	Name() string
	Execute(ctx context.Context, payload models.OrderRequestBody, opts sender.Options) (state.StoreState, error)
	Finalize(ctx context.Context, opts sender.Options) (state.StoreState, error)
}

// withoutPayment drops payment data so it is never sent with the order
func withoutPayment(payload models.OrderRequestBody) models.OrderRequestBody {
	payload.Payment = nil
	return payload
}

// CreditCardPaymentStrategy submits the order, then the card details to the gateway
type CreditCardPaymentStrategy struct {
	store    *store.Store
	orders   *action.OrderActionCreator
	payments *action.PaymentActionCreator
}

func (s *CreditCardPaymentStrategy) Name() string { return "credit_card" }

func (s *CreditCardPaymentStrategy) Execute(ctx context.Context, payload models.OrderRequestBody, opts sender.Options) (state.StoreState, error) {
	if payload.Payment == nil {
		return s.store.GetState(), sdkerr.NewMissingDataError("execute payment", "payment")
	}

	if st, err := s.store.Dispatch(ctx, s.orders.SubmitOrder(withoutPayment(payload), opts)); err != nil {
		return st, err
	}

	return s.store.Dispatch(ctx, s.payments.SubmitPayment(*payload.Payment, opts))
}

func (s *CreditCardPaymentStrategy) Finalize(ctx context.Context, opts sender.Options) (state.StoreState, error) {
	return s.store.GetState(), ErrFinalizationNotRequired
}

// NoPaymentDataRequiredPaymentStrategy places orders whose total is covered
// without payment data
type NoPaymentDataRequiredPaymentStrategy struct {
	store  *store.Store
	orders *action.OrderActionCreator
}

func (s *NoPaymentDataRequiredPaymentStrategy) Name() string { return "no_payment_data_required" }

func (s *NoPaymentDataRequiredPaymentStrategy) Execute(ctx context.Context, payload models.OrderRequestBody, opts sender.Options) (state.StoreState, error) {
	return s.store.Dispatch(ctx, s.orders.SubmitOrder(withoutPayment(payload), opts))
}

func (s *NoPaymentDataRequiredPaymentStrategy) Finalize(ctx context.Context, opts sender.Options) (state.StoreState, error) {
	return s.store.GetState(), ErrFinalizationNotRequired
}

// OfflinePaymentStrategy places the order with the method name only; payment
// is collected outside the checkout
type OfflinePaymentStrategy struct {
	store  *store.Store
	orders *action.OrderActionCreator
}

func (s *OfflinePaymentStrategy) Name() string { return "offline" }

func (s *OfflinePaymentStrategy) Execute(ctx context.Context, payload models.OrderRequestBody, opts sender.Options) (state.StoreState, error) {
	return s.store.Dispatch(ctx, s.orders.SubmitOrder(payload, opts))
}

func (s *OfflinePaymentStrategy) Finalize(ctx context.Context, opts sender.Options) (state.StoreState, error) {
	return s.store.GetState(), ErrFinalizationNotRequired
}

// OffsitePaymentStrategy submits the order and hands the shopper to a hosted
// payment page. The order is finalized once the gateway acknowledged it.
type OffsitePaymentStrategy struct {
	store    *store.Store
	orders   *action.OrderActionCreator
	payments *action.PaymentActionCreator
}

func (s *OffsitePaymentStrategy) Name() string { return "offsite" }

func (s *OffsitePaymentStrategy) Execute(ctx context.Context, payload models.OrderRequestBody, opts sender.Options) (state.StoreState, error) {
	if payload.Payment == nil {
		return s.store.GetState(), sdkerr.NewMissingDataError("execute payment", "payment")
	}

	if st, err := s.store.Dispatch(ctx, s.orders.SubmitOrder(payload, opts)); err != nil {
		return st, err
	}

	return s.store.Dispatch(ctx, s.payments.InitializeOffsitePayment(*payload.Payment, opts))
}

func (s *OffsitePaymentStrategy) Finalize(ctx context.Context, opts sender.Options) (state.StoreState, error) {
	order := selector.NewCheckoutStoreSelector(s.store.GetState()).GetOrder()
	if order == nil {
		return s.store.GetState(), ErrFinalizationNotRequired
	}

	switch order.Payment.Status {
	case paymentStatus(models.PaymentStepAcknowledge), paymentStatus(models.PaymentStepFinalize):
		return s.store.Dispatch(ctx, s.orders.FinalizeOrder(order.OrderID, opts))
	default:
		return s.store.GetState(), ErrFinalizationNotRequired
	}
}

func paymentStatus(step string) string {
	return models.PaymentStatusPrefix + step
}

// StrategyRegistry picks the payment strategy for an order
type StrategyRegistry struct {
	creditCard    *CreditCardPaymentStrategy
	noPaymentData *NoPaymentDataRequiredPaymentStrategy
	offline       *OfflinePaymentStrategy
	offsite       *OffsitePaymentStrategy
}

// NewStrategyRegistry creates the strategies of one session
func NewStrategyRegistry(st *store.Store, orders *action.OrderActionCreator, payments *action.PaymentActionCreator) *StrategyRegistry {
	return &StrategyRegistry{
		creditCard:    &CreditCardPaymentStrategy{store: st, orders: orders, payments: payments},
		noPaymentData: &NoPaymentDataRequiredPaymentStrategy{store: st, orders: orders},
		offline:       &OfflinePaymentStrategy{store: st, orders: orders},
		offsite:       &OffsitePaymentStrategy{store: st, orders: orders, payments: payments},
	}
}

// ForOrder returns the strategy for payload given the current state. Orders
// whose total is covered skip payment entirely.
func (r *StrategyRegistry) ForOrder(s state.StoreState, payload models.OrderRequestBody) (PaymentStrategy, error) {
	sel := selector.NewCheckoutStoreSelector(s)
	if !sel.IsPaymentDataRequired(payload.UseStoreCredit) {
		return r.noPaymentData, nil
	}

	if payload.Payment == nil || payload.Payment.MethodID == "" {
		return nil, sdkerr.NewMissingDataError("submit order", "payment.methodId")
	}

	method := sel.GetPaymentMethod(payload.Payment.MethodID, payload.Payment.GatewayID)
	if method == nil {
		return nil, sdkerr.NewMissingDataError("submit order", "paymentMethod")
	}

	return r.forMethod(*method), nil
}

// ForSelectedMethod returns the strategy of the checkout's payment method,
// defaulting to one that needs no finalization
func (r *StrategyRegistry) ForSelectedMethod(s state.StoreState) PaymentStrategy {
	method := selector.NewCheckoutStoreSelector(s).GetSelectedPaymentMethod()
	if method == nil {
		return r.noPaymentData
	}
	return r.forMethod(*method)
}

func (r *StrategyRegistry) forMethod(method models.PaymentMethod) PaymentStrategy {
	switch method.Type {
	case models.PaymentTypeHosted:
		return r.offsite
	case models.PaymentTypeOffline:
		return r.offline
	default:
		return r.creditCard
	}
}
