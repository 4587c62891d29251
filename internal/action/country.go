package action

import (
	"context"

	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

type CountryActionCreator struct {
	countries         *sender.CountryRequestSender
	shippingCountries *sender.ShippingCountryRequestSender
	logger            *zap.Logger
}

// NewCountryActionCreator creates a new country action creator
func NewCountryActionCreator(countries *sender.CountryRequestSender, shippingCountries *sender.ShippingCountryRequestSender) *CountryActionCreator {
	return &CountryActionCreator{
		countries:         countries,
		shippingCountries: shippingCountries,
		logger:            util.GetLogger(),
	}
}

// LoadCountries loads the billing countries
func (c *CountryActionCreator) LoadCountries(opts sender.Options) store.Action {
	return instrument(c.logger, "LoadCountries", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		emit(signal.New(signal.LoadCountriesRequested, nil))

		resp, err := c.countries.LoadCountries(ctx, opts)
		if err != nil {
			return fail(emit, signal.LoadCountriesFailed, err)
		}

		emit(signal.New(signal.LoadCountriesSucceeded, resp.Body.Data))
		return nil
	})
}

// LoadShippingCountries loads the countries the store ships to
func (c *CountryActionCreator) LoadShippingCountries(opts sender.Options) store.Action {
	return instrument(c.logger, "LoadShippingCountries", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		emit(signal.New(signal.LoadShippingCountriesRequested, nil))

		resp, err := c.shippingCountries.LoadCountries(ctx, opts)
		if err != nil {
			return fail(emit, signal.LoadShippingCountriesFailed, err)
		}

		emit(signal.New(signal.LoadShippingCountriesSucceeded, resp.Body.Data))
		return nil
	})
}
