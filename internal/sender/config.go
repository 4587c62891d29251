package sender

import (
	"context"
	"fmt"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/transport"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

type ConfigRequestSender struct {
	client *transport.Client
	cache  Cache
	logger *zap.Logger
}

// NewConfigRequestSender creates a new config request sender. cache may be nil.
func NewConfigRequestSender(client *transport.Client, cache Cache) *ConfigRequestSender {
	return &ConfigRequestSender{
		client: client,
		cache:  cache,
		logger: util.GetLogger(),
	}
}

// LoadConfig fetches the checkout settings of the store
func (s *ConfigRequestSender) LoadConfig(ctx context.Context, opts Options) (transport.Response[models.StoreConfig], error) {
	key := fmt.Sprintf("%s:config", s.client.BaseURL())

	return readThrough(ctx, s.cache, s.logger, key, "config", func() (transport.Response[models.StoreConfig], error) {
		return transport.Get[models.StoreConfig](ctx, s.client, "/api/storefront/checkout-settings", transport.RequestOptions{
			Route:   "/api/storefront/checkout-settings",
			Headers: transport.InternalHeaders(),
			Timeout: opts.Timeout,
		})
	})
}
