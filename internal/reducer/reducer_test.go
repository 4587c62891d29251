package reducer

import (
	"errors"
	"testing"

	"checkout-sdk/internal/fixture"
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRemote = errors.New("request failed")

func apply(s state.StoreState, signals ...signal.Signal) state.StoreState {
	for _, sig := range signals {
		for _, reduce := range All() {
			s = reduce(s, sig)
		}
	}
	return s
}

func TestCheckoutReducerLoadingState(t *testing.T) {
	output := Checkout(state.StoreState{}, signal.New(signal.LoadCheckoutRequested, nil))

	assert.Equal(t, state.CheckoutState{
		Errors:   state.CheckoutErrors{LoadError: nil},
		Statuses: state.CheckoutStatuses{IsLoading: true},
	}, output.Checkout)
}

func TestCheckoutReducerLoadedState(t *testing.T) {
	checkout := fixture.Checkout()
	output := Checkout(state.StoreState{}, signal.New(signal.LoadCheckoutSucceeded, &checkout))

	assert.Equal(t, state.CheckoutState{
		Data:     &checkout,
		Errors:   state.CheckoutErrors{LoadError: nil},
		Statuses: state.CheckoutStatuses{IsLoading: false},
	}, output.Checkout)
}

func TestCheckoutReducerErrorStateKeepsData(t *testing.T) {
	checkout := fixture.Checkout()
	s := Checkout(state.StoreState{}, signal.New(signal.LoadCheckoutSucceeded, &checkout))
	s = Checkout(s, signal.New(signal.LoadCheckoutRequested, nil))
	s = Checkout(s, signal.NewError(signal.LoadCheckoutFailed, errRemote))

	assert.Same(t, &checkout, s.Checkout.Data)
	assert.Equal(t, errRemote, s.Checkout.Errors.LoadError)
	assert.False(t, s.Checkout.Statuses.IsLoading)
}

func TestRequestedClearsPreviousError(t *testing.T) {
	s := apply(state.StoreState{},
		signal.NewError(signal.LoadOrderFailed, errRemote),
		signal.New(signal.LoadOrderRequested, nil),
	)

	assert.Nil(t, s.Order.Errors.LoadError)
	assert.True(t, s.Order.Statuses.IsLoading)
}

func TestCheckoutPayloadRefreshesDerivedSlices(t *testing.T) {
	checkout := fixture.Checkout()
	s := apply(state.StoreState{}, signal.New(signal.CreateConsignmentsSucceeded, &checkout))

	require.NotNil(t, s.Checkout.Data)
	require.NotNil(t, s.Cart.Data)
	require.NotNil(t, s.Customer.Data)
	require.NotNil(t, s.BillingAddress.Data)
	assert.Equal(t, checkout.Cart.ID, s.Cart.Data.ID)
	assert.Equal(t, checkout.Customer.Email, s.Customer.Data.Email)
	assert.Equal(t, checkout.Consignments, s.Consignments.Data)
	assert.False(t, s.Consignments.Statuses.IsCreating)
}

func TestConsignmentStatusesAreIndependent(t *testing.T) {
	s := apply(state.StoreState{},
		signal.New(signal.CreateConsignmentsRequested, nil),
		signal.New(signal.UpdateShippingOptionRequested, nil),
	)
	assert.True(t, s.Consignments.Statuses.IsCreating)
	assert.True(t, s.Consignments.Statuses.IsUpdatingShippingOption)

	s = apply(s, signal.NewError(signal.UpdateShippingOptionFailed, errRemote))
	assert.True(t, s.Consignments.Statuses.IsCreating)
	assert.False(t, s.Consignments.Statuses.IsUpdatingShippingOption)
	assert.Equal(t, errRemote, s.Consignments.Errors.UpdateShippingOptionError)
	assert.Nil(t, s.Consignments.Errors.CreateError)
}

func TestBillingAddressContinueAsGuest(t *testing.T) {
	s := apply(state.StoreState{}, signal.New(signal.ContinueAsGuestRequested, nil))
	assert.True(t, s.BillingAddress.Statuses.IsContinuingAsGuest)

	checkout := fixture.Checkout()
	s = apply(s, signal.New(signal.ContinueAsGuestSucceeded, &checkout))
	assert.False(t, s.BillingAddress.Statuses.IsContinuingAsGuest)
	assert.Equal(t, checkout.BillingAddress, s.BillingAddress.Data)
}

func TestOrderReducerSubmitMergesMeta(t *testing.T) {
	submitted := fixture.SubmittedOrder()
	s := apply(state.StoreState{},
		signal.New(signal.SubmitOrderRequested, nil),
		signal.NewWithMeta(signal.SubmitOrderSucceeded, &submitted, &models.OrderMeta{Token: "t1", DeviceFingerprint: "fp"}),
	)

	require.NotNil(t, s.Order.Meta)
	assert.Equal(t, "t1", s.Order.Meta.Token)
	assert.Equal(t, "fp", s.Order.Meta.DeviceFingerprint)
	require.NotNil(t, s.Order.Meta.OrderID)
	assert.Equal(t, fixture.OrderID, *s.Order.Meta.OrderID)
	assert.Equal(t, "authorizenet", s.Order.Meta.Payment.ID)
	assert.Nil(t, s.Order.Data)
	assert.False(t, s.Order.Statuses.IsSubmitting)

	finalized := fixture.SubmittedOrder()
	finalized.Payment.Status = "PAYMENT_STATUS_FINALIZE"
	s = apply(s, signal.New(signal.FinalizeOrderSucceeded, &finalized))
	assert.Equal(t, "t1", s.Order.Meta.Token)
	assert.Equal(t, "PAYMENT_STATUS_FINALIZE", s.Order.Meta.Payment.Status)
}

func TestOrderReducerLoad(t *testing.T) {
	order := fixture.Order()
	s := apply(state.StoreState{},
		signal.New(signal.LoadOrderRequested, nil),
		signal.New(signal.LoadOrderSucceeded, &order),
	)

	assert.Equal(t, &order, s.Order.Data)
	assert.False(t, s.Order.Statuses.IsLoading)
	assert.Nil(t, s.Order.Errors.LoadError)
}

func TestPaymentReducer(t *testing.T) {
	s := apply(state.StoreState{}, signal.New(signal.SubmitPaymentRequested, nil))
	assert.True(t, s.Payment.Statuses.IsSubmitting)

	s = apply(s, signal.NewError(signal.SubmitPaymentFailed, errRemote))
	assert.False(t, s.Payment.Statuses.IsSubmitting)
	assert.Equal(t, errRemote, s.Payment.Errors.SubmitError)

	resp := &models.PaymentResponse{Status: "ok"}
	s = apply(s, signal.New(signal.SubmitPaymentRequested, nil), signal.New(signal.SubmitPaymentSucceeded, resp))
	assert.Nil(t, s.Payment.Errors.SubmitError)
	assert.Equal(t, resp, s.Payment.Data)
}

func TestPaymentMethodsReducerMergesSingleMethod(t *testing.T) {
	methods := fixture.PaymentMethods()
	s := apply(state.StoreState{},
		signal.NewWithMeta(signal.LoadPaymentMethodsSucceeded, methods, fixture.PaymentMethodsMeta()),
	)
	require.Len(t, s.PaymentMethods.Data, 4)
	assert.Equal(t, fixture.PaymentMethodsMeta(), s.PaymentMethods.Meta)

	updated := fixture.PaymentMethod()
	updated.ClientToken = "fresh"
	s = apply(s,
		signal.NewWithMeta(signal.LoadPaymentMethodRequested, nil, updated.ID),
	)
	assert.True(t, s.PaymentMethods.Statuses.IsLoadingMethod)
	assert.Equal(t, updated.ID, s.PaymentMethods.Statuses.LoadingMethod)

	s = apply(s, signal.NewWithMeta(signal.LoadPaymentMethodSucceeded, &updated, updated.ID))
	require.Len(t, s.PaymentMethods.Data, 4)
	assert.Equal(t, "fresh", s.PaymentMethods.Data[0].ClientToken)
	assert.Empty(t, methods[0].ClientToken)
	assert.False(t, s.PaymentMethods.Statuses.IsLoadingMethod)

	added := models.PaymentMethod{ID: "new"}
	s = apply(s, signal.NewWithMeta(signal.LoadPaymentMethodSucceeded, &added, added.ID))
	assert.Len(t, s.PaymentMethods.Data, 5)
}

func TestInstrumentsReducer(t *testing.T) {
	meta := fixture.InstrumentMeta()
	s := apply(state.StoreState{},
		signal.New(signal.LoadInstrumentsRequested, nil),
		signal.NewWithMeta(signal.LoadInstrumentsSucceeded, fixture.Instruments(), meta),
	)
	require.Len(t, s.Instruments.Data, 2)
	assert.Equal(t, meta, s.Instruments.Meta)

	s = apply(s, signal.New(signal.DeleteInstrumentRequested, fixture.InstrumentID))
	assert.True(t, s.Instruments.Statuses.IsDeleting)
	assert.Equal(t, fixture.InstrumentID, s.Instruments.Statuses.DeletingInstrument)

	s = apply(s, signal.NewError(signal.DeleteInstrumentFailed, errRemote))
	assert.Equal(t, fixture.InstrumentID, s.Instruments.Errors.FailedInstrument)
	assert.Len(t, s.Instruments.Data, 2)

	s = apply(s,
		signal.New(signal.DeleteInstrumentRequested, fixture.InstrumentID),
		signal.New(signal.DeleteInstrumentSucceeded, fixture.InstrumentID),
	)
	require.Len(t, s.Instruments.Data, 1)
	assert.Equal(t, "111", s.Instruments.Data[0].ID)
	assert.Equal(t, meta, s.Instruments.Meta)
}

func TestConfigAndCountryReducers(t *testing.T) {
	config := fixture.StoreConfig()
	s := apply(state.StoreState{},
		signal.New(signal.LoadConfigSucceeded, &config),
		signal.New(signal.LoadCountriesSucceeded, fixture.Countries()),
		signal.New(signal.LoadShippingCountriesRequested, nil),
	)

	assert.Equal(t, &config, s.Config.Data)
	assert.Len(t, s.Countries.Data, 3)
	assert.Nil(t, s.ShippingCountries.Data)
	assert.True(t, s.ShippingCountries.Statuses.IsLoading)
}

func TestUnrelatedSignalLeavesStateUntouched(t *testing.T) {
	initial := fixture.StoreState()
	output := apply(initial, signal.New(signal.Type("UNKNOWN"), nil))

	assert.Equal(t, initial, output)
}
