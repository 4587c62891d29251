package selector

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/state"
)

type CheckoutSelector struct {
	checkout state.CheckoutState
}

func (s CheckoutSelector) GetCheckout() *models.Checkout {
	return copyOf(s.checkout.Data)
}

func (s CheckoutSelector) GetLoadError() error {
	return s.checkout.Errors.LoadError
}

func (s CheckoutSelector) IsLoading() bool {
	return s.checkout.Statuses.IsLoading
}

type CartSelector struct {
	cart state.CartState
}

func (s CartSelector) GetCart() *models.Cart {
	return copyOf(s.cart.Data)
}

func (s CartSelector) GetLoadError() error {
	return s.cart.Errors.LoadError
}

func (s CartSelector) IsLoading() bool {
	return s.cart.Statuses.IsLoading
}

type CustomerSelector struct {
	customer state.CustomerState
}

func (s CustomerSelector) GetCustomer() *models.Customer {
	return copyOf(s.customer.Data)
}

type BillingAddressSelector struct {
	billing state.BillingAddressState
}

func (s BillingAddressSelector) GetBillingAddress() *models.Address {
	return copyOf(s.billing.Data)
}

func (s BillingAddressSelector) GetLoadError() error {
	return s.billing.Errors.LoadError
}

func (s BillingAddressSelector) GetUpdateError() error {
	return s.billing.Errors.UpdateError
}

func (s BillingAddressSelector) GetContinueAsGuestError() error {
	return s.billing.Errors.ContinueAsGuestError
}

func (s BillingAddressSelector) IsLoading() bool {
	return s.billing.Statuses.IsLoading
}

func (s BillingAddressSelector) IsUpdating() bool {
	return s.billing.Statuses.IsUpdating
}

func (s BillingAddressSelector) IsContinuingAsGuest() bool {
	return s.billing.Statuses.IsContinuingAsGuest
}

type ConfigSelector struct {
	config state.ConfigState
}

func (s ConfigSelector) GetStoreConfig() *models.StoreConfig {
	return copyOf(s.config.Data)
}

func (s ConfigSelector) GetLoadError() error {
	return s.config.Errors.LoadError
}

func (s ConfigSelector) IsLoading() bool {
	return s.config.Statuses.IsLoading
}

type CountrySelector struct {
	countries state.CountryState
}

func (s CountrySelector) GetCountries() []models.Country {
	return s.countries.Data
}

func (s CountrySelector) GetLoadError() error {
	return s.countries.Errors.LoadError
}

func (s CountrySelector) IsLoading() bool {
	return s.countries.Statuses.IsLoading
}

type ShippingCountrySelector struct {
	countries state.ShippingCountryState
}

func (s ShippingCountrySelector) GetShippingCountries() []models.Country {
	return s.countries.Data
}

func (s ShippingCountrySelector) GetLoadError() error {
	return s.countries.Errors.LoadError
}

func (s ShippingCountrySelector) IsLoading() bool {
	return s.countries.Statuses.IsLoading
}
