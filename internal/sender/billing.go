package sender

import (
	"context"
	"fmt"
	"net/url"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
)

type BillingAddressRequestSender struct {
	client *transport.Client
}

// NewBillingAddressRequestSender creates a new billing address request sender
func NewBillingAddressRequestSender(client *transport.Client) *BillingAddressRequestSender {
	return &BillingAddressRequestSender{client: client}
}

// CreateAddress sets the billing address of a checkout
func (s *BillingAddressRequestSender) CreateAddress(ctx context.Context, checkoutID string, address models.Address, opts Options) (transport.Response[models.Checkout], error) {
	return transport.Post[models.Checkout](ctx, s.client, fmt.Sprintf("/api/storefront/checkouts/%s/billing-address", url.PathEscape(checkoutID)), transport.RequestOptions{
		Route:   "/api/storefront/checkouts/:id/billing-address",
		Params:  includeParams(CheckoutDefaultIncludes, opts.Include),
		Body:    address,
		Timeout: opts.Timeout,
	})
}

// UpdateAddress replaces an existing billing address
func (s *BillingAddressRequestSender) UpdateAddress(ctx context.Context, checkoutID string, address models.Address, opts Options) (transport.Response[models.Checkout], error) {
	return transport.Put[models.Checkout](ctx, s.client, fmt.Sprintf("/api/storefront/checkouts/%s/billing-address/%s", url.PathEscape(checkoutID), url.PathEscape(address.ID)), transport.RequestOptions{
		Route:   "/api/storefront/checkouts/:id/billing-address/:addressId",
		Params:  includeParams(CheckoutDefaultIncludes, opts.Include),
		Body:    address,
		Timeout: opts.Timeout,
	})
}
