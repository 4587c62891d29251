package sender

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
)

// InstrumentRequestSender reads and deletes vaulted instruments
type InstrumentRequestSender struct {
	client      *transport.Client
	paymentHost string
}

// NewInstrumentRequestSender creates a new instrument request sender
func NewInstrumentRequestSender(client *transport.Client, paymentHost string) *InstrumentRequestSender {
	return &InstrumentRequestSender{client: client, paymentHost: strings.TrimRight(paymentHost, "/")}
}

// GetVaultAccessToken issues a token for instrument calls
func (s *InstrumentRequestSender) GetVaultAccessToken(ctx context.Context, opts Options) (transport.Response[models.VaultAccessToken], error) {
	return transport.Get[models.VaultAccessToken](ctx, s.client, "/api/storefront/payments/vault-access-token", transport.RequestOptions{
		Route:   "/api/storefront/payments/vault-access-token",
		Headers: transport.InternalHeaders(),
		Timeout: opts.Timeout,
	})
}

// LoadInstruments lists the shopper's vaulted instruments
func (s *InstrumentRequestSender) LoadInstruments(ctx context.Context, storeID string, shopperID int64, authToken string, opts Options) (transport.Response[models.InstrumentsResponse], error) {
	return transport.Get[models.InstrumentsResponse](ctx, s.client, s.instrumentsURL(storeID, shopperID), transport.RequestOptions{
		Route:   "/api/v2/stores/:storeId/shoppers/:shopperId/instruments",
		Headers: authHeaders(authToken),
		Timeout: opts.Timeout,
	})
}

// DeleteInstrument removes a vaulted instrument and returns the remaining ones
func (s *InstrumentRequestSender) DeleteInstrument(ctx context.Context, storeID string, shopperID int64, authToken, instrumentID string, opts Options) (transport.Response[models.InstrumentsResponse], error) {
	return transport.Delete[models.InstrumentsResponse](ctx, s.client, fmt.Sprintf("%s/%s", s.instrumentsURL(storeID, shopperID), url.PathEscape(instrumentID)), transport.RequestOptions{
		Route:   "/api/v2/stores/:storeId/shoppers/:shopperId/instruments/:id",
		Headers: authHeaders(authToken),
		Timeout: opts.Timeout,
	})
}

func (s *InstrumentRequestSender) instrumentsURL(storeID string, shopperID int64) string {
	return fmt.Sprintf("%s/api/v2/stores/%s/shoppers/%d/instruments", s.paymentHost, url.PathEscape(storeID), shopperID)
}

func authHeaders(authToken string) http.Header {
	h := http.Header{}
	h.Set("Accept", transport.ContentTypeJSON)
	h.Set("Authorization", authToken)
	return h
}
