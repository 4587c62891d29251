package reducer

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
)

// Config reduces the store config slice
func Config(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.Config

	switch sig.Type {
	case signal.LoadConfigRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadConfigFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadConfigSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil
		if config, ok := sig.Payload.(*models.StoreConfig); ok && config != nil {
			slice.Data = config
		}
	}

	s.Config = slice
	return s
}

// Countries reduces the billing country slice
func Countries(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.Countries

	switch sig.Type {
	case signal.LoadCountriesRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadCountriesFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadCountriesSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil
		if countries, ok := sig.Payload.([]models.Country); ok {
			slice.Data = countries
		}
	}

	s.Countries = slice
	return s
}

// ShippingCountries reduces the shipping country slice
func ShippingCountries(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.ShippingCountries

	switch sig.Type {
	case signal.LoadShippingCountriesRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadShippingCountriesFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadShippingCountriesSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil
		if countries, ok := sig.Payload.([]models.Country); ok {
			slice.Data = countries
		}
	}

	s.ShippingCountries = slice
	return s
}
