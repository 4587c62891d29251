// Package selector provides read-only accessors over a state snapshot.
// Getters return nil when the data they need is not loaded and never panic.
// Returned values are copies at the top level; nested data is shared with
// the state and must be treated as read-only.
package selector

import "checkout-sdk/internal/state"

// Selectors groups the per-slice selectors of one snapshot
type Selectors struct {
	BillingAddress    BillingAddressSelector
	Cart              CartSelector
	Checkout          CheckoutSelector
	Config            ConfigSelector
	Consignments      ConsignmentSelector
	Countries         CountrySelector
	Customer          CustomerSelector
	Instruments       InstrumentSelector
	Order             OrderSelector
	Payment           PaymentSelector
	PaymentMethods    PaymentMethodSelector
	ShippingAddress   ShippingAddressSelector
	ShippingCountries ShippingCountrySelector
	ShippingOptions   ShippingOptionSelector
}

// New builds the selectors for a state snapshot
func New(s state.StoreState) Selectors {
	return Selectors{
		BillingAddress:    BillingAddressSelector{s.BillingAddress},
		Cart:              CartSelector{s.Cart},
		Checkout:          CheckoutSelector{s.Checkout},
		Config:            ConfigSelector{s.Config},
		Consignments:      ConsignmentSelector{s.Consignments},
		Countries:         CountrySelector{s.Countries},
		Customer:          CustomerSelector{s.Customer},
		Instruments:       InstrumentSelector{s.Instruments},
		Order:             OrderSelector{s.Order},
		Payment:           PaymentSelector{checkout: s.Checkout, customer: s.Customer, order: s.Order, payment: s.Payment},
		PaymentMethods:    PaymentMethodSelector{s.PaymentMethods},
		ShippingAddress:   ShippingAddressSelector{s.Consignments},
		ShippingCountries: ShippingCountrySelector{s.ShippingCountries},
		ShippingOptions:   ShippingOptionSelector{s.Consignments},
	}
}

func copyOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
