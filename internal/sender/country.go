package sender

import (
	"context"
	"fmt"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

type CountryRequestSender struct {
	client *transport.Client
	cache  Cache
	locale string
	logger *zap.Logger
}

// NewCountryRequestSender creates a new country request sender. cache may be nil.
func NewCountryRequestSender(client *transport.Client, cache Cache, locale string) *CountryRequestSender {
	return &CountryRequestSender{
		client: client,
		cache:  cache,
		locale: locale,
		logger: util.GetLogger(),
	}
}

// LoadCountries fetches every country the store bills to
func (s *CountryRequestSender) LoadCountries(ctx context.Context, opts Options) (transport.Response[models.CountryResponse], error) {
	return loadCountries(ctx, s.client, s.cache, s.logger, s.locale, "/internalapi/v1/store/countries", "countries", opts)
}

type ShippingCountryRequestSender struct {
	client *transport.Client
	cache  Cache
	locale string
	logger *zap.Logger
}

// NewShippingCountryRequestSender creates a new shipping country request sender. cache may be nil.
func NewShippingCountryRequestSender(client *transport.Client, cache Cache, locale string) *ShippingCountryRequestSender {
	return &ShippingCountryRequestSender{
		client: client,
		cache:  cache,
		locale: locale,
		logger: util.GetLogger(),
	}
}

// LoadCountries fetches the countries the store ships to
func (s *ShippingCountryRequestSender) LoadCountries(ctx context.Context, opts Options) (transport.Response[models.CountryResponse], error) {
	return loadCountries(ctx, s.client, s.cache, s.logger, s.locale, "/internalapi/v1/shipping/countries", "shipping_countries", opts)
}

func loadCountries(ctx context.Context, client *transport.Client, cache Cache, logger *zap.Logger, locale, path, resource string, opts Options) (transport.Response[models.CountryResponse], error) {
	key := fmt.Sprintf("%s:%s:%s", client.BaseURL(), resource, locale)

	return readThrough(ctx, cache, logger, key, resource, func() (transport.Response[models.CountryResponse], error) {
		headers := transport.InternalHeaders()
		if locale != "" {
			headers.Set("Accept-Language", locale)
		}

		return transport.Get[models.CountryResponse](ctx, client, path, transport.RequestOptions{
			Route:   path,
			Headers: headers,
			Timeout: opts.Timeout,
		})
	})
}
