package selector

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/state"
)

type OrderSelector struct {
	order state.OrderState
}

func (s OrderSelector) GetOrder() *models.Order {
	return copyOf(s.order.Data)
}

func (s OrderSelector) GetOrderMeta() *models.OrderMeta {
	return copyOf(s.order.Meta)
}

func (s OrderSelector) GetLoadError() error {
	return s.order.Errors.LoadError
}

func (s OrderSelector) GetSubmitError() error {
	return s.order.Errors.SubmitError
}

func (s OrderSelector) GetFinalizeError() error {
	return s.order.Errors.FinalizeError
}

func (s OrderSelector) IsLoading() bool {
	return s.order.Statuses.IsLoading
}

func (s OrderSelector) IsSubmitting() bool {
	return s.order.Statuses.IsSubmitting
}

func (s OrderSelector) IsFinalizing() bool {
	return s.order.Statuses.IsFinalizing
}
