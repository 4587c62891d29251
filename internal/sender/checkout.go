package sender

import (
	"context"
	"fmt"
	"net/url"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
)

// CheckoutDefaultIncludes are always requested with a checkout
var CheckoutDefaultIncludes = []string{
	"cart.lineItems.physicalItems.options",
	"cart.lineItems.digitalItems.options",
	"customer",
	"payments",
	"promotions.banners",
}

type CheckoutRequestSender struct {
	client *transport.Client
}

// NewCheckoutRequestSender creates a new checkout request sender
func NewCheckoutRequestSender(client *transport.Client) *CheckoutRequestSender {
	return &CheckoutRequestSender{client: client}
}

// LoadCheckout fetches a checkout with the default and requested includes
func (s *CheckoutRequestSender) LoadCheckout(ctx context.Context, id string, opts Options) (transport.Response[models.Checkout], error) {
	return transport.Get[models.Checkout](ctx, s.client, fmt.Sprintf("/api/storefront/checkout/%s", url.PathEscape(id)), transport.RequestOptions{
		Route:   "/api/storefront/checkout/:id",
		Params:  includeParams(CheckoutDefaultIncludes, opts.Include),
		Timeout: opts.Timeout,
	})
}
