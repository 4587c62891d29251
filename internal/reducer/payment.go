package reducer

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
)

// Payment reduces the payment submission slice
func Payment(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.Payment

	switch sig.Type {
	case signal.SubmitPaymentRequested:
		slice.Statuses.IsSubmitting = true
		slice.Errors.SubmitError = nil
	case signal.SubmitPaymentFailed:
		slice.Statuses.IsSubmitting = false
		slice.Errors.SubmitError = sig.Err()
	case signal.SubmitPaymentSucceeded:
		slice.Statuses.IsSubmitting = false
		slice.Errors.SubmitError = nil
		if resp, ok := sig.Payload.(*models.PaymentResponse); ok && resp != nil {
			slice.Data = resp
		}

	case signal.InitializeOffsitePaymentRequested:
		slice.Statuses.IsInitializing = true
		slice.Errors.InitializeError = nil
	case signal.InitializeOffsitePaymentFailed:
		slice.Statuses.IsInitializing = false
		slice.Errors.InitializeError = sig.Err()
	case signal.InitializeOffsitePaymentSucceeded:
		slice.Statuses.IsInitializing = false
		slice.Errors.InitializeError = nil
		if resp, ok := sig.Payload.(*models.PaymentResponse); ok && resp != nil {
			slice.Data = resp
		}
	}

	s.Payment = slice
	return s
}

// PaymentMethods reduces the payment method catalog slice
func PaymentMethods(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.PaymentMethods

	switch sig.Type {
	case signal.LoadPaymentMethodsRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadPaymentMethodsFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadPaymentMethodsSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil
		if methods, ok := sig.Payload.([]models.PaymentMethod); ok {
			slice.Data = methods
		}
		if meta, ok := sig.Meta.(*models.PaymentMethodsMeta); ok && meta != nil {
			slice.Meta = meta
		}

	case signal.LoadPaymentMethodRequested:
		slice.Statuses.IsLoadingMethod = true
		slice.Statuses.LoadingMethod, _ = sig.Meta.(string)
		slice.Errors.LoadMethodError = nil
		slice.Errors.FailedMethod = ""
	case signal.LoadPaymentMethodFailed:
		slice.Statuses.IsLoadingMethod = false
		slice.Statuses.LoadingMethod = ""
		slice.Errors.LoadMethodError = sig.Err()
		slice.Errors.FailedMethod, _ = sig.Meta.(string)
	case signal.LoadPaymentMethodSucceeded:
		slice.Statuses.IsLoadingMethod = false
		slice.Statuses.LoadingMethod = ""
		slice.Errors.LoadMethodError = nil
		slice.Errors.FailedMethod = ""
		if method, ok := sig.Payload.(*models.PaymentMethod); ok && method != nil {
			slice.Data = mergePaymentMethod(slice.Data, *method)
		}
	}

	s.PaymentMethods = slice
	return s
}

// mergePaymentMethod replaces the method with the same id and gateway, or
// appends it. The input slice is never modified.
func mergePaymentMethod(methods []models.PaymentMethod, method models.PaymentMethod) []models.PaymentMethod {
	merged := make([]models.PaymentMethod, 0, len(methods)+1)
	replaced := false

	for _, m := range methods {
		if m.ID == method.ID && m.Gateway == method.Gateway {
			merged = append(merged, method)
			replaced = true
			continue
		}
		merged = append(merged, m)
	}

	if !replaced {
		merged = append(merged, method)
	}
	return merged
}
