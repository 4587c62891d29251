package selector

import (
	"testing"
	"time"

	"checkout-sdk/internal/fixture"
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/state"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyStateReturnsNil(t *testing.T) {
	c := NewCheckoutStoreSelector(state.StoreState{})

	assert.Nil(t, c.GetCheckout())
	assert.Nil(t, c.GetOrder())
	assert.Nil(t, c.GetConfig())
	assert.Nil(t, c.GetShippingAddress())
	assert.Nil(t, c.GetShippingOptions())
	assert.Nil(t, c.GetSelectedShippingOption())
	assert.Nil(t, c.GetShippingCountries())
	assert.Nil(t, c.GetBillingAddress())
	assert.Nil(t, c.GetBillingCountries())
	assert.Nil(t, c.GetPaymentMethods())
	assert.Nil(t, c.GetPaymentMethod("authorizenet", ""))
	assert.Nil(t, c.GetSelectedPaymentMethod())
	assert.Nil(t, c.GetCart())
	assert.Nil(t, c.GetCustomer())
	assert.Nil(t, c.GetInstruments())
	assert.False(t, c.IsPaymentDataRequired(false))
	assert.False(t, c.IsPaymentDataSubmitted("authorizenet", ""))
}

func TestGetSelectedPaymentMethod(t *testing.T) {
	withPayments := fixture.CheckoutWithPayments()

	t.Run("payment id without catalog", func(t *testing.T) {
		s := state.StoreState{Checkout: state.CheckoutState{Data: &withPayments}}
		assert.Nil(t, NewCheckoutStoreSelector(s).GetSelectedPaymentMethod())
	})

	t.Run("catalog without payment id", func(t *testing.T) {
		checkout := fixture.Checkout()
		s := state.StoreState{
			Checkout:       state.CheckoutState{Data: &checkout},
			PaymentMethods: state.PaymentMethodState{Data: fixture.PaymentMethods()},
		}
		assert.Nil(t, NewCheckoutStoreSelector(s).GetSelectedPaymentMethod())
	})

	t.Run("payment id not in catalog", func(t *testing.T) {
		s := state.StoreState{
			Checkout:       state.CheckoutState{Data: &withPayments},
			PaymentMethods: state.PaymentMethodState{Data: []models.PaymentMethod{fixture.BraintreePaypal()}},
		}
		assert.Nil(t, NewCheckoutStoreSelector(s).GetSelectedPaymentMethod())
	})

	t.Run("both loaded", func(t *testing.T) {
		s := state.StoreState{
			Checkout:       state.CheckoutState{Data: &withPayments},
			PaymentMethods: state.PaymentMethodState{Data: fixture.PaymentMethods()},
		}
		method := NewCheckoutStoreSelector(s).GetSelectedPaymentMethod()
		require.NotNil(t, method)
		assert.Equal(t, "authorizenet", method.ID)
	})

	t.Run("falls back to order meta payment", func(t *testing.T) {
		s := state.StoreState{
			Order: state.OrderState{Meta: &models.OrderMeta{
				Payment: &models.InternalOrderPayment{ID: "braintreepaypal"},
			}},
			PaymentMethods: state.PaymentMethodState{Data: fixture.PaymentMethods()},
		}
		method := NewCheckoutStoreSelector(s).GetSelectedPaymentMethod()
		require.NotNil(t, method)
		assert.Equal(t, "braintreepaypal", method.ID)
	})
}

func TestGetPaymentIDSkipsStoreCreditAndGiftCertificates(t *testing.T) {
	checkout := fixture.Checkout()
	checkout.Payments = []models.CheckoutPayment{
		{ProviderID: models.ProviderStoreCredit},
		{ProviderID: models.ProviderGiftCertificate},
		{ProviderID: "adyen", GatewayID: "adyen"},
	}

	id := New(state.StoreState{Checkout: state.CheckoutState{Data: &checkout}}).Payment.GetPaymentID()
	require.NotNil(t, id)
	assert.Equal(t, models.PaymentID{ProviderID: "adyen", GatewayID: "adyen"}, *id)
}

func TestIsPaymentDataRequired(t *testing.T) {
	checkout := fixture.Checkout()
	customer := fixture.GuestCustomer()
	customer.StoreCredit = decimal.NewFromInt(190)

	s := state.StoreState{
		Checkout: state.CheckoutState{Data: &checkout},
		Customer: state.CustomerState{Data: &customer},
	}
	c := NewCheckoutStoreSelector(s)

	assert.True(t, c.IsPaymentDataRequired(false))
	assert.False(t, c.IsPaymentDataRequired(true))

	customer.StoreCredit = decimal.NewFromInt(100)
	assert.True(t, NewCheckoutStoreSelector(s).IsPaymentDataRequired(true))
}

func TestIsPaymentDataSubmitted(t *testing.T) {
	withPayments := fixture.CheckoutWithPayments()
	methods := fixture.PaymentMethods()
	methods[1].InitializationData = &models.PaymentInitializationData{Nonce: "nonce"}

	s := state.StoreState{
		Checkout:       state.CheckoutState{Data: &withPayments},
		PaymentMethods: state.PaymentMethodState{Data: methods},
	}
	c := NewCheckoutStoreSelector(s)

	assert.True(t, c.IsPaymentDataSubmitted("authorizenet", ""))
	assert.True(t, c.IsPaymentDataSubmitted("braintreepaypal", ""))
	assert.False(t, c.IsPaymentDataSubmitted("cheque", ""))
	assert.False(t, c.IsPaymentDataSubmitted("missing", ""))

	initializing := fixture.CheckoutWithPayments()
	initializing.Payments[0].Detail.Step = models.PaymentStepInitialize
	s.Checkout.Data = &initializing
	assert.False(t, NewCheckoutStoreSelector(s).IsPaymentDataSubmitted("authorizenet", ""))
}

func TestGetPaymentMethodMatchesGateway(t *testing.T) {
	multi := fixture.AdyenMultiOption()
	multi.ID = "scheme"
	multi.Gateway = "adyen"
	s := state.StoreState{PaymentMethods: state.PaymentMethodState{Data: append(fixture.PaymentMethods(), multi)}}
	c := NewCheckoutStoreSelector(s)

	require.NotNil(t, c.GetPaymentMethod("scheme", "adyen"))
	assert.Nil(t, c.GetPaymentMethod("scheme", "braintree"))
	require.NotNil(t, c.GetPaymentMethod("scheme", ""))
}

func TestShippingSelectors(t *testing.T) {
	c := NewCheckoutStoreSelector(fixture.StoreState())

	address := c.GetShippingAddress()
	require.NotNil(t, address)
	assert.Equal(t, fixture.ConsignmentID, address.ID)
	assert.Equal(t, "12345 Testing Way", address.AddressLine1)

	options := c.GetShippingOptions()
	require.Contains(t, options, fixture.ConsignmentID)
	require.Len(t, options[fixture.ConsignmentID], 1)
	assert.True(t, options[fixture.ConsignmentID][0].Selected)

	selected := c.GetSelectedShippingOption()
	require.NotNil(t, selected)
	assert.Equal(t, fixture.ShippingOption().ID, selected.ID)
}

func TestCartAndOrderAreMapped(t *testing.T) {
	c := NewCheckoutStoreSelector(fixture.StoreState())

	cart := c.GetCart()
	require.NotNil(t, cart)
	assert.Equal(t, int64(19000), cart.GrandTotal.IntegerAmount)

	order := c.GetOrder()
	require.NotNil(t, order)
	assert.Equal(t, fixture.OrderID, order.OrderID)
	assert.Equal(t, "PAYMENT_STATUS_ACKNOWLEDGE", order.Payment.Status)

	billing := c.GetBillingAddress()
	require.NotNil(t, billing)
	assert.Equal(t, "55c96cda6f04c", billing.ID)
}

func TestReturnedValuesDoNotAliasState(t *testing.T) {
	st := fixture.StoreState()
	c := NewCheckoutStoreSelector(st)

	checkout := c.GetCheckout()
	checkout.ID = "changed"

	assert.Equal(t, fixture.CheckoutID, st.Checkout.Data.ID)
}

func TestVaultAccessTokenValidity(t *testing.T) {
	now := time.Now()
	s := New(state.StoreState{Instruments: state.InstrumentState{Meta: &models.InstrumentMeta{
		VaultAccessToken:  "vt1",
		VaultAccessExpiry: now.Add(time.Minute).UnixMilli(),
	}}})

	assert.Equal(t, "vt1", s.Instruments.GetValidVaultAccessToken(now))
	assert.Empty(t, s.Instruments.GetValidVaultAccessToken(now.Add(2*time.Minute)))
	assert.Empty(t, New(state.StoreState{}).Instruments.GetValidVaultAccessToken(now))
}

func TestStatusAccessors(t *testing.T) {
	s := New(state.StoreState{
		Instruments:    state.InstrumentState{Statuses: state.InstrumentStatuses{IsDeleting: true, DeletingInstrument: "123"}},
		PaymentMethods: state.PaymentMethodState{Statuses: state.PaymentMethodStatuses{IsLoadingMethod: true, LoadingMethod: "braintree"}},
	})

	assert.True(t, s.Instruments.IsDeleting(""))
	assert.True(t, s.Instruments.IsDeleting("123"))
	assert.False(t, s.Instruments.IsDeleting("456"))
	assert.True(t, s.PaymentMethods.IsLoadingMethod("braintree"))
	assert.False(t, s.PaymentMethods.IsLoadingMethod("authorizenet"))
}
