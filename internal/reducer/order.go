package reducer

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
)

// Order reduces the order slice. Order data only changes on load; submit and
// finalize results are folded into the order meta.
func Order(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.Order

	switch sig.Type {
	case signal.LoadOrderRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadOrderFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadOrderSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil
		if order, ok := sig.Payload.(*models.Order); ok && order != nil {
			slice.Data = order
		}

	case signal.SubmitOrderRequested:
		slice.Statuses.IsSubmitting = true
		slice.Errors.SubmitError = nil
	case signal.SubmitOrderFailed:
		slice.Statuses.IsSubmitting = false
		slice.Errors.SubmitError = sig.Err()
	case signal.SubmitOrderSucceeded:
		slice.Statuses.IsSubmitting = false
		slice.Errors.SubmitError = nil
		slice.Meta = mergeOrderMeta(slice.Meta, sig)

	case signal.FinalizeOrderRequested:
		slice.Statuses.IsFinalizing = true
		slice.Errors.FinalizeError = nil
	case signal.FinalizeOrderFailed:
		slice.Statuses.IsFinalizing = false
		slice.Errors.FinalizeError = sig.Err()
	case signal.FinalizeOrderSucceeded:
		slice.Statuses.IsFinalizing = false
		slice.Errors.FinalizeError = nil
		slice.Meta = mergeOrderMeta(slice.Meta, sig)
	}

	s.Order = slice
	return s
}

// mergeOrderMeta copies the submitted order fields onto the existing meta.
// A token is only replaced when the signal carries a new one.
func mergeOrderMeta(current *models.OrderMeta, sig signal.Signal) *models.OrderMeta {
	meta := models.OrderMeta{}
	if current != nil {
		meta = *current
	}

	if order, ok := sig.Payload.(*models.SubmittedOrder); ok && order != nil {
		orderID := order.OrderID
		meta.OrderID = &orderID
		payment := order.Payment
		meta.Payment = &payment
		if order.CallbackURL != "" {
			meta.CallbackURL = order.CallbackURL
		}
	}

	if incoming, ok := sig.Meta.(*models.OrderMeta); ok && incoming != nil {
		if incoming.Token != "" {
			meta.Token = incoming.Token
		}
		if incoming.DeviceFingerprint != "" {
			meta.DeviceFingerprint = incoming.DeviceFingerprint
		}
	}

	return &meta
}
