package selector

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/state"

	"github.com/shopspring/decimal"
)

// PaymentSelector derives payment facts from the checkout, customer and order slices
type PaymentSelector struct {
	checkout state.CheckoutState
	customer state.CustomerState
	order    state.OrderState
	payment  state.PaymentState
}

// GetPaymentID returns the provider of the first non store credit, non gift
// certificate checkout payment, falling back to the submitted order payment.
func (s PaymentSelector) GetPaymentID() *models.PaymentID {
	if s.checkout.Data != nil {
		for _, p := range s.checkout.Data.Payments {
			if p.ProviderID == models.ProviderStoreCredit || p.ProviderID == models.ProviderGiftCertificate {
				continue
			}
			return &models.PaymentID{ProviderID: p.ProviderID, GatewayID: p.GatewayID}
		}
	}

	if meta := s.order.Meta; meta != nil && meta.Payment != nil && meta.Payment.ID != "" {
		return &models.PaymentID{ProviderID: meta.Payment.ID, GatewayID: meta.Payment.Gateway}
	}

	return nil
}

// GetPaymentToken returns the order token issued on order submission, or ""
func (s PaymentSelector) GetPaymentToken() string {
	if s.order.Meta == nil {
		return ""
	}
	return s.order.Meta.Token
}

// IsPaymentDataRequired reports whether the grand total, less store credit
// when useStoreCredit is set, still needs to be paid
func (s PaymentSelector) IsPaymentDataRequired(useStoreCredit bool) bool {
	if s.checkout.Data == nil {
		return false
	}

	total := s.checkout.Data.GrandTotal
	if useStoreCredit {
		total = total.Sub(s.storeCredit())
	}
	return total.GreaterThan(decimal.Zero)
}

func (s PaymentSelector) storeCredit() decimal.Decimal {
	if s.customer.Data != nil {
		return s.customer.Data.StoreCredit
	}
	return s.checkout.Data.Customer.StoreCredit
}

// IsPaymentDataSubmitted reports whether method already holds payment data,
// either as an initialization nonce or an acknowledged checkout payment
func (s PaymentSelector) IsPaymentDataSubmitted(method *models.PaymentMethod) bool {
	if method == nil {
		return false
	}
	if method.Nonce() != "" {
		return true
	}
	if s.checkout.Data == nil {
		return false
	}

	for _, p := range s.checkout.Data.Payments {
		if p.ProviderID != method.ID {
			continue
		}
		if method.Gateway != "" && p.GatewayID != method.Gateway {
			continue
		}
		if p.Detail.Step == models.PaymentStepAcknowledge || p.Detail.Step == models.PaymentStepFinalize {
			return true
		}
	}
	return false
}

func (s PaymentSelector) GetSubmitError() error {
	return s.payment.Errors.SubmitError
}

func (s PaymentSelector) GetInitializeError() error {
	return s.payment.Errors.InitializeError
}

func (s PaymentSelector) IsSubmitting() bool {
	return s.payment.Statuses.IsSubmitting
}

func (s PaymentSelector) IsInitializing() bool {
	return s.payment.Statuses.IsInitializing
}

type PaymentMethodSelector struct {
	methods state.PaymentMethodState
}

func (s PaymentMethodSelector) GetPaymentMethods() []models.PaymentMethod {
	return s.methods.Data
}

func (s PaymentMethodSelector) GetPaymentMethodsMeta() *models.PaymentMethodsMeta {
	return copyOf(s.methods.Meta)
}

// GetPaymentMethod finds a method by id, and by gateway when one is given
func (s PaymentMethodSelector) GetPaymentMethod(methodID, gatewayID string) *models.PaymentMethod {
	for i := range s.methods.Data {
		m := s.methods.Data[i]
		if m.ID != methodID {
			continue
		}
		if gatewayID != "" && m.Gateway != gatewayID {
			continue
		}
		return &m
	}
	return nil
}

func (s PaymentMethodSelector) GetLoadError() error {
	return s.methods.Errors.LoadError
}

// GetLoadMethodError returns the load error of methodID, or of any method when empty
func (s PaymentMethodSelector) GetLoadMethodError(methodID string) error {
	if methodID != "" && s.methods.Errors.FailedMethod != methodID {
		return nil
	}
	return s.methods.Errors.LoadMethodError
}

func (s PaymentMethodSelector) IsLoading() bool {
	return s.methods.Statuses.IsLoading
}

// IsLoadingMethod reports whether methodID, or any method when empty, is loading
func (s PaymentMethodSelector) IsLoadingMethod(methodID string) bool {
	if methodID != "" && s.methods.Statuses.LoadingMethod != methodID {
		return false
	}
	return s.methods.Statuses.IsLoadingMethod
}
