package reducer

import (
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
)

// Checkout reduces the checkout slice
func Checkout(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.Checkout

	switch sig.Type {
	case signal.LoadCheckoutRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadCheckoutFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadCheckoutSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil
	}

	if checkout, ok := checkoutPayload(sig); ok {
		slice.Data = checkout
	}

	s.Checkout = slice
	return s
}

// Cart reduces the cart slice from checkout payloads
func Cart(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.Cart

	switch sig.Type {
	case signal.LoadCheckoutRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadCheckoutFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadCheckoutSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil
	}

	if checkout, ok := checkoutPayload(sig); ok {
		cart := checkout.Cart
		slice.Data = &cart
	}

	s.Cart = slice
	return s
}

// Customer reduces the customer slice from checkout payloads
func Customer(s state.StoreState, sig signal.Signal) state.StoreState {
	if checkout, ok := checkoutPayload(sig); ok {
		customer := checkout.Customer
		s.Customer.Data = &customer
	}
	return s
}

// BillingAddress reduces the billing address slice
func BillingAddress(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.BillingAddress

	switch sig.Type {
	case signal.LoadCheckoutRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadCheckoutFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadCheckoutSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil

	case signal.UpdateBillingAddressRequested:
		slice.Statuses.IsUpdating = true
		slice.Errors.UpdateError = nil
	case signal.UpdateBillingAddressFailed:
		slice.Statuses.IsUpdating = false
		slice.Errors.UpdateError = sig.Err()
	case signal.UpdateBillingAddressSucceeded:
		slice.Statuses.IsUpdating = false
		slice.Errors.UpdateError = nil

	case signal.ContinueAsGuestRequested:
		slice.Statuses.IsContinuingAsGuest = true
		slice.Errors.ContinueAsGuestError = nil
	case signal.ContinueAsGuestFailed:
		slice.Statuses.IsContinuingAsGuest = false
		slice.Errors.ContinueAsGuestError = sig.Err()
	case signal.ContinueAsGuestSucceeded:
		slice.Statuses.IsContinuingAsGuest = false
		slice.Errors.ContinueAsGuestError = nil
	}

	if checkout, ok := checkoutPayload(sig); ok && checkout.BillingAddress != nil {
		address := *checkout.BillingAddress
		slice.Data = &address
	}

	s.BillingAddress = slice
	return s
}

// Consignments reduces the consignment slice
func Consignments(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.Consignments

	switch sig.Type {
	case signal.LoadCheckoutRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadCheckoutFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadCheckoutSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil

	case signal.LoadShippingOptionsRequested:
		slice.Statuses.IsLoadingShippingOptions = true
		slice.Errors.LoadShippingOptionsError = nil
	case signal.LoadShippingOptionsFailed:
		slice.Statuses.IsLoadingShippingOptions = false
		slice.Errors.LoadShippingOptionsError = sig.Err()
	case signal.LoadShippingOptionsSucceeded:
		slice.Statuses.IsLoadingShippingOptions = false
		slice.Errors.LoadShippingOptionsError = nil

	case signal.CreateConsignmentsRequested:
		slice.Statuses.IsCreating = true
		slice.Errors.CreateError = nil
	case signal.CreateConsignmentsFailed:
		slice.Statuses.IsCreating = false
		slice.Errors.CreateError = sig.Err()
	case signal.CreateConsignmentsSucceeded:
		slice.Statuses.IsCreating = false
		slice.Errors.CreateError = nil

	case signal.UpdateConsignmentRequested:
		slice.Statuses.IsUpdating = true
		slice.Errors.UpdateError = nil
	case signal.UpdateConsignmentFailed:
		slice.Statuses.IsUpdating = false
		slice.Errors.UpdateError = sig.Err()
	case signal.UpdateConsignmentSucceeded:
		slice.Statuses.IsUpdating = false
		slice.Errors.UpdateError = nil

	case signal.UpdateShippingOptionRequested:
		slice.Statuses.IsUpdatingShippingOption = true
		slice.Errors.UpdateShippingOptionError = nil
	case signal.UpdateShippingOptionFailed:
		slice.Statuses.IsUpdatingShippingOption = false
		slice.Errors.UpdateShippingOptionError = sig.Err()
	case signal.UpdateShippingOptionSucceeded:
		slice.Statuses.IsUpdatingShippingOption = false
		slice.Errors.UpdateShippingOptionError = nil
	}

	if checkout, ok := checkoutPayload(sig); ok {
		slice.Data = checkout.Consignments
	}

	s.Consignments = slice
	return s
}
