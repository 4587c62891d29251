package sender

import (
	"context"
	"fmt"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
)

// OrderDefaultIncludes are always requested with an order
var OrderDefaultIncludes = []string{
	"payments",
	"lineItems.physicalItems.socialMedia",
	"lineItems.physicalItems.options",
	"lineItems.digitalItems.socialMedia",
	"lineItems.digitalItems.options",
}

// OrderTokenHeader carries the order token on submission responses
const OrderTokenHeader = "Token"

type OrderRequestSender struct {
	client *transport.Client
}

// NewOrderRequestSender creates a new order request sender
func NewOrderRequestSender(client *transport.Client) *OrderRequestSender {
	return &OrderRequestSender{client: client}
}

// LoadOrder fetches an order by id
func (s *OrderRequestSender) LoadOrder(ctx context.Context, orderID int64, opts Options) (transport.Response[models.Order], error) {
	return transport.Get[models.Order](ctx, s.client, fmt.Sprintf("/api/storefront/orders/%d", orderID), transport.RequestOptions{
		Route:   "/api/storefront/orders/:id",
		Params:  includeParams(OrderDefaultIncludes, opts.Include),
		Timeout: opts.Timeout,
	})
}

// SubmitOrder places the order of the current cart
func (s *OrderRequestSender) SubmitOrder(ctx context.Context, body models.InternalOrderRequestBody, opts Options) (transport.Response[models.SubmitOrderResponse], error) {
	return transport.Post[models.SubmitOrderResponse](ctx, s.client, "/internalapi/v1/checkout/order", transport.RequestOptions{
		Route:   "/internalapi/v1/checkout/order",
		Headers: transport.InternalHeaders(),
		Body:    body,
		Timeout: opts.Timeout,
	})
}

// FinalizeOrder completes an order whose payment was taken offsite
func (s *OrderRequestSender) FinalizeOrder(ctx context.Context, orderID int64, opts Options) (transport.Response[models.SubmitOrderResponse], error) {
	return transport.Post[models.SubmitOrderResponse](ctx, s.client, fmt.Sprintf("/internalapi/v1/checkout/order/%d", orderID), transport.RequestOptions{
		Route:   "/internalapi/v1/checkout/order/:id",
		Headers: transport.InternalHeaders(),
		Timeout: opts.Timeout,
	})
}
