package action

import (
	"context"

	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

type ConfigActionCreator struct {
	sender *sender.ConfigRequestSender
	logger *zap.Logger
}

// NewConfigActionCreator creates a new config action creator
func NewConfigActionCreator(s *sender.ConfigRequestSender) *ConfigActionCreator {
	return &ConfigActionCreator{
		sender: s,
		logger: util.GetLogger(),
	}
}

// LoadConfig loads the store's checkout settings
func (c *ConfigActionCreator) LoadConfig(opts sender.Options) store.Action {
	return instrument(c.logger, "LoadConfig", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		emit(signal.New(signal.LoadConfigRequested, nil))

		resp, err := c.sender.LoadConfig(ctx, opts)
		if err != nil {
			return fail(emit, signal.LoadConfigFailed, err)
		}

		emit(signal.New(signal.LoadConfigSucceeded, &resp.Body))
		return nil
	})
}
