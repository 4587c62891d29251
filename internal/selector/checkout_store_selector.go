package selector

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/state"
)

// CheckoutStoreSelector is the read facade exposed to the application
type CheckoutStoreSelector struct {
	s Selectors
}

// NewCheckoutStoreSelector builds the facade for a state snapshot
func NewCheckoutStoreSelector(st state.StoreState) *CheckoutStoreSelector {
	return &CheckoutStoreSelector{s: New(st)}
}

func (c *CheckoutStoreSelector) GetCheckout() *models.Checkout {
	return c.s.Checkout.GetCheckout()
}

// GetOrder returns the loaded order in its internal shape
func (c *CheckoutStoreSelector) GetOrder() *models.InternalOrder {
	order := c.s.Order.GetOrder()
	if order == nil {
		return nil
	}
	internal := models.MapToInternalOrder(*order)
	return &internal
}

func (c *CheckoutStoreSelector) GetConfig() *models.StoreConfig {
	return c.s.Config.GetStoreConfig()
}

func (c *CheckoutStoreSelector) GetShippingAddress() *models.InternalAddress {
	return c.s.ShippingAddress.GetShippingAddress()
}

func (c *CheckoutStoreSelector) GetShippingOptions() models.InternalShippingOptionList {
	return c.s.ShippingOptions.GetShippingOptions()
}

func (c *CheckoutStoreSelector) GetSelectedShippingOption() *models.InternalShippingOption {
	return c.s.ShippingOptions.GetSelectedShippingOption()
}

func (c *CheckoutStoreSelector) GetShippingCountries() []models.Country {
	return c.s.ShippingCountries.GetShippingCountries()
}

func (c *CheckoutStoreSelector) GetBillingAddress() *models.InternalAddress {
	address := c.s.BillingAddress.GetBillingAddress()
	if address == nil {
		return nil
	}
	internal := models.MapToInternalAddress(*address, "")
	return &internal
}

func (c *CheckoutStoreSelector) GetBillingCountries() []models.Country {
	return c.s.Countries.GetCountries()
}

func (c *CheckoutStoreSelector) GetPaymentMethods() []models.PaymentMethod {
	return c.s.PaymentMethods.GetPaymentMethods()
}

func (c *CheckoutStoreSelector) GetPaymentMethod(methodID, gatewayID string) *models.PaymentMethod {
	return c.s.PaymentMethods.GetPaymentMethod(methodID, gatewayID)
}

// GetSelectedPaymentMethod resolves the checkout's payment id against the
// method catalog. It is nil unless both are loaded and the id resolves.
func (c *CheckoutStoreSelector) GetSelectedPaymentMethod() *models.PaymentMethod {
	id := c.s.Payment.GetPaymentID()
	if id == nil {
		return nil
	}
	return c.s.PaymentMethods.GetPaymentMethod(id.ProviderID, id.GatewayID)
}

// GetCart returns the checkout's cart in its internal shape
func (c *CheckoutStoreSelector) GetCart() *models.InternalCart {
	checkout := c.s.Checkout.GetCheckout()
	if checkout == nil {
		return nil
	}
	cart := models.MapToInternalCart(*checkout)
	return &cart
}

func (c *CheckoutStoreSelector) GetCustomer() *models.Customer {
	return c.s.Customer.GetCustomer()
}

func (c *CheckoutStoreSelector) IsPaymentDataRequired(useStoreCredit bool) bool {
	return c.s.Payment.IsPaymentDataRequired(useStoreCredit)
}

func (c *CheckoutStoreSelector) IsPaymentDataSubmitted(methodID, gatewayID string) bool {
	return c.s.Payment.IsPaymentDataSubmitted(c.GetPaymentMethod(methodID, gatewayID))
}

func (c *CheckoutStoreSelector) GetInstruments() []models.Instrument {
	return c.s.Instruments.GetInstruments()
}

// Selectors exposes the per-slice selectors, including loading and error accessors
func (c *CheckoutStoreSelector) Selectors() Selectors {
	return c.s
}
