package sender

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
)

// Headers carrying payment session meta
const (
	DeviceSessionIDHeader = "X-Device-Session-Id"
	SessionHashHeader     = "X-Session-Hash"
)

type PaymentMethodRequestSender struct {
	client *transport.Client
}

// NewPaymentMethodRequestSender creates a new payment method request sender
func NewPaymentMethodRequestSender(client *transport.Client) *PaymentMethodRequestSender {
	return &PaymentMethodRequestSender{client: client}
}

// LoadPaymentMethods fetches the payment method catalog
func (s *PaymentMethodRequestSender) LoadPaymentMethods(ctx context.Context, opts Options) (transport.Response[[]models.PaymentMethod], error) {
	return transport.Get[[]models.PaymentMethod](ctx, s.client, "/api/storefront/payments", transport.RequestOptions{
		Route:   "/api/storefront/payments",
		Timeout: opts.Timeout,
	})
}

// LoadPaymentMethod fetches a single method, optionally scoped to a gateway
func (s *PaymentMethodRequestSender) LoadPaymentMethod(ctx context.Context, methodID, gatewayID string, opts Options) (transport.Response[models.PaymentMethod], error) {
	var params url.Values
	if gatewayID != "" {
		params = url.Values{"gatewayId": {gatewayID}}
	}

	return transport.Get[models.PaymentMethod](ctx, s.client, fmt.Sprintf("/api/storefront/payments/%s", url.PathEscape(methodID)), transport.RequestOptions{
		Route:   "/api/storefront/payments/:id",
		Params:  params,
		Timeout: opts.Timeout,
	})
}

// PaymentMethodsMetaFromHeaders extracts session meta from a catalog response
func PaymentMethodsMetaFromHeaders(h http.Header) *models.PaymentMethodsMeta {
	return &models.PaymentMethodsMeta{
		Request: &models.PaymentRequestMeta{
			DeviceSessionID: h.Get(DeviceSessionIDHeader),
			SessionHash:     h.Get(SessionHashHeader),
		},
	}
}
