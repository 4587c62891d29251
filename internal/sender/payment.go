package sender

import (
	"context"
	"net/http"
	"strings"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
)

// PaymentRequestSender talks to the payment gateway host
type PaymentRequestSender struct {
	client      *transport.Client
	paymentHost string
}

// NewPaymentRequestSender creates a new payment request sender
func NewPaymentRequestSender(client *transport.Client, paymentHost string) *PaymentRequestSender {
	return &PaymentRequestSender{client: client, paymentHost: strings.TrimRight(paymentHost, "/")}
}

// SubmitPayment sends payment data for the submitted order
func (s *PaymentRequestSender) SubmitPayment(ctx context.Context, body models.PaymentRequestBody, opts Options) (transport.Response[models.PaymentResponse], error) {
	return transport.Post[models.PaymentResponse](ctx, s.client, s.paymentHost+"/api/public/v1/orders/payments", transport.RequestOptions{
		Route:   "/api/public/v1/orders/payments",
		Headers: paymentHeaders(),
		Body:    body,
		Timeout: opts.Timeout,
	})
}

// InitializeOffsitePayment starts a hosted payment flow
func (s *PaymentRequestSender) InitializeOffsitePayment(ctx context.Context, body models.PaymentRequestBody, opts Options) (transport.Response[models.PaymentResponse], error) {
	return transport.Post[models.PaymentResponse](ctx, s.client, s.paymentHost+"/api/public/v1/payments/offsite", transport.RequestOptions{
		Route:   "/api/public/v1/payments/offsite",
		Headers: paymentHeaders(),
		Body:    body,
		Timeout: opts.Timeout,
	})
}

func paymentHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", transport.ContentTypeJSON)
	return h
}
