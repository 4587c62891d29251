package service

import (
	"context"
	"time"

	"checkout-sdk/internal/action"
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/reducer"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/transport"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

// Options configures a checkout session
type Options struct {
	BaseURL     string
	PaymentHost string
	Locale      string
	// RequestTimeout is applied to every outbound request when positive
	RequestTimeout time.Duration
	// Cache serves checkout settings and country lists; may be nil
	Cache sender.Cache
}

// CheckoutService owns the store of one checkout session and runs its workflows
type CheckoutService struct {
	store *store.Store

	checkouts      *action.CheckoutActionCreator
	consignments   *action.ConsignmentActionCreator
	billing        *action.BillingAddressActionCreator
	orders         *action.OrderActionCreator
	payments       *action.PaymentActionCreator
	paymentMethods *action.PaymentMethodActionCreator
	instruments    *action.InstrumentActionCreator
	config         *action.ConfigActionCreator
	countries      *action.CountryActionCreator

	strategies *StrategyRegistry
	timeout    time.Duration
	logger     *zap.Logger
}

// NewCheckoutService creates a session with an empty state
func NewCheckoutService(opts Options) *CheckoutService {
	return NewCheckoutServiceWithState(opts, state.StoreState{})
}

// NewCheckoutServiceWithState creates a session starting from initial
func NewCheckoutServiceWithState(opts Options, initial state.StoreState) *CheckoutService {
	client := transport.NewClient(opts.BaseURL)
	checkoutSender := sender.NewCheckoutRequestSender(client)

	orders := action.NewOrderActionCreator(sender.NewOrderRequestSender(client))
	payments := action.NewPaymentActionCreator(sender.NewPaymentRequestSender(client, opts.PaymentHost), orders)
	st := store.New(initial, reducer.All()...)

	return &CheckoutService{
		store:          st,
		checkouts:      action.NewCheckoutActionCreator(checkoutSender),
		consignments:   action.NewConsignmentActionCreator(sender.NewConsignmentRequestSender(client), checkoutSender),
		billing:        action.NewBillingAddressActionCreator(sender.NewBillingAddressRequestSender(client)),
		orders:         orders,
		payments:       payments,
		paymentMethods: action.NewPaymentMethodActionCreator(sender.NewPaymentMethodRequestSender(client)),
		instruments:    action.NewInstrumentActionCreator(sender.NewInstrumentRequestSender(client, opts.PaymentHost)),
		config:         action.NewConfigActionCreator(sender.NewConfigRequestSender(client, opts.Cache)),
		countries: action.NewCountryActionCreator(
			sender.NewCountryRequestSender(client, opts.Cache, opts.Locale),
			sender.NewShippingCountryRequestSender(client, opts.Cache, opts.Locale),
		),
		strategies: NewStrategyRegistry(st, orders, payments),
		timeout:    opts.RequestTimeout,
		logger:     util.GetLogger(),
	}
}

// Selector returns the read facade over the current state
func (s *CheckoutService) Selector() *selector.CheckoutStoreSelector {
	return selector.NewCheckoutStoreSelector(s.store.GetState())
}

// Subscribe registers fn for every applied signal
func (s *CheckoutService) Subscribe(fn func(state.StoreState, signal.Signal)) func() {
	return s.store.Subscribe(fn)
}

func (s *CheckoutService) options(include ...string) sender.Options {
	return sender.Options{Include: include, Timeout: s.timeout}
}

func (s *CheckoutService) dispatch(ctx context.Context, a store.Action) (*selector.CheckoutStoreSelector, error) {
	st, err := s.store.Dispatch(ctx, a)
	return selector.NewCheckoutStoreSelector(st), err
}

// LoadCheckout loads checkoutID, or reloads the current checkout when empty
func (s *CheckoutService) LoadCheckout(ctx context.Context, checkoutID string, include ...string) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.checkouts.LoadCheckout(checkoutID, s.options(include...)))
}

func (s *CheckoutService) LoadShippingOptions(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.consignments.LoadShippingOptions(s.options()))
}

func (s *CheckoutService) UpdateShippingAddress(ctx context.Context, address models.Address) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.consignments.UpdateAddress(address, s.options()))
}

func (s *CheckoutService) SelectShippingOption(ctx context.Context, optionID string) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.consignments.SelectShippingOption(optionID, s.options()))
}

func (s *CheckoutService) UpdateBillingAddress(ctx context.Context, address models.Address) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.billing.UpdateAddress(address, s.options()))
}

func (s *CheckoutService) ContinueAsGuest(ctx context.Context, credentials models.GuestCredentials) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.billing.ContinueAsGuest(credentials, s.options()))
}

func (s *CheckoutService) LoadConfig(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.config.LoadConfig(s.options()))
}

func (s *CheckoutService) LoadBillingCountries(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.countries.LoadCountries(s.options()))
}

func (s *CheckoutService) LoadShippingCountries(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.countries.LoadShippingCountries(s.options()))
}

func (s *CheckoutService) LoadPaymentMethods(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.paymentMethods.LoadPaymentMethods(s.options()))
}

func (s *CheckoutService) LoadPaymentMethod(ctx context.Context, methodID, gatewayID string) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.paymentMethods.LoadPaymentMethod(methodID, gatewayID, s.options()))
}

func (s *CheckoutService) LoadInstruments(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.instruments.LoadInstruments(s.options()))
}

func (s *CheckoutService) DeleteInstrument(ctx context.Context, instrumentID string) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.instruments.DeleteInstrument(instrumentID, s.options()))
}

func (s *CheckoutService) LoadOrder(ctx context.Context, orderID int64) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.orders.LoadOrder(orderID, s.options()))
}

// LoadCurrentOrder reloads the order placed for this checkout
func (s *CheckoutService) LoadCurrentOrder(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	return s.dispatch(ctx, s.orders.LoadCurrentOrder(s.options()))
}

// SubmitOrder places the order using the strategy of the chosen payment method
func (s *CheckoutService) SubmitOrder(ctx context.Context, payload models.OrderRequestBody) (*selector.CheckoutStoreSelector, error) {
	ctx, span := util.StartSpan(ctx, "CheckoutService.SubmitOrder")
	defer span.End()

	strategy, err := s.strategies.ForOrder(s.store.GetState(), payload)
	if err != nil {
		util.PreconditionFailuresTotal.WithLabelValues("SubmitOrder").Inc()
		return s.Selector(), err
	}

	s.logger.Info("Submitting order", zap.String("strategy", strategy.Name()))

	st, err := strategy.Execute(ctx, payload, s.options())
	return selector.NewCheckoutStoreSelector(st), err
}

// FinalizeOrder completes an order whose payment was taken offsite
func (s *CheckoutService) FinalizeOrder(ctx context.Context) (*selector.CheckoutStoreSelector, error) {
	ctx, span := util.StartSpan(ctx, "CheckoutService.FinalizeOrder")
	defer span.End()

	strategy := s.strategies.ForSelectedMethod(s.store.GetState())

	st, err := strategy.Finalize(ctx, s.options())
	return selector.NewCheckoutStoreSelector(st), err
}
