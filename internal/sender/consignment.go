package sender

import (
	"context"
	"fmt"
	"net/url"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
)

const includeShippingOptions = "consignments.availableShippingOptions"

type ConsignmentRequestSender struct {
	client *transport.Client
}

// NewConsignmentRequestSender creates a new consignment request sender
func NewConsignmentRequestSender(client *transport.Client) *ConsignmentRequestSender {
	return &ConsignmentRequestSender{client: client}
}

func consignmentIncludes() []string {
	return append(append([]string{}, CheckoutDefaultIncludes...), includeShippingOptions)
}

// CreateConsignments creates consignments and returns the updated checkout
func (s *ConsignmentRequestSender) CreateConsignments(ctx context.Context, checkoutID string, consignments []models.ConsignmentCreateRequestBody, opts Options) (transport.Response[models.Checkout], error) {
	return transport.Post[models.Checkout](ctx, s.client, fmt.Sprintf("/api/storefront/checkouts/%s/consignments", url.PathEscape(checkoutID)), transport.RequestOptions{
		Route:   "/api/storefront/checkouts/:id/consignments",
		Params:  includeParams(consignmentIncludes(), opts.Include),
		Body:    consignments,
		Timeout: opts.Timeout,
	})
}

// UpdateConsignment updates one consignment and returns the updated checkout
func (s *ConsignmentRequestSender) UpdateConsignment(ctx context.Context, checkoutID string, consignment models.ConsignmentUpdateRequestBody, opts Options) (transport.Response[models.Checkout], error) {
	return transport.Put[models.Checkout](ctx, s.client, fmt.Sprintf("/api/storefront/checkouts/%s/consignments/%s", url.PathEscape(checkoutID), url.PathEscape(consignment.ID)), transport.RequestOptions{
		Route:   "/api/storefront/checkouts/:id/consignments/:consignmentId",
		Params:  includeParams(consignmentIncludes(), opts.Include),
		Body:    consignment,
		Timeout: opts.Timeout,
	})
}
