// Package reducer holds the pure functions that fold lifecycle signals
// into each slice of the store state.
package reducer

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
)

// All returns one reducer per state slice
func All() []state.Reducer {
	return []state.Reducer{
		BillingAddress,
		Cart,
		Checkout,
		Config,
		Consignments,
		Countries,
		Customer,
		Instruments,
		Order,
		Payment,
		PaymentMethods,
		ShippingCountries,
	}
}

// checkoutRefreshes are the succeeded signals whose payload is a full checkout
var checkoutRefreshes = map[signal.Type]bool{
	signal.LoadCheckoutSucceeded:         true,
	signal.LoadShippingOptionsSucceeded:  true,
	signal.UpdateBillingAddressSucceeded: true,
	signal.ContinueAsGuestSucceeded:      true,
	signal.CreateConsignmentsSucceeded:   true,
	signal.UpdateConsignmentSucceeded:    true,
	signal.UpdateShippingOptionSucceeded: true,
}

func checkoutPayload(sig signal.Signal) (*models.Checkout, bool) {
	if !checkoutRefreshes[sig.Type] {
		return nil, false
	}
	checkout, ok := sig.Payload.(*models.Checkout)
	return checkout, ok && checkout != nil
}
