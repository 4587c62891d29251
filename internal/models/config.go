package models

// StoreConfig is the checkout settings document
type StoreConfig struct {
	StoreProfile     StoreProfile     `json:"storeProfile"`
	Currency         StoreCurrency    `json:"currency"`
	CheckoutSettings CheckoutSettings `json:"checkoutSettings"`
	PaymentSettings  PaymentSettings  `json:"paymentSettings"`
}

type StoreProfile struct {
	StoreHash        string `json:"storeHash"`
	StoreID          string `json:"storeId"`
	StoreLanguage    string `json:"storeLanguage"`
	StoreName        string `json:"storeName"`
	StorePhoneNumber string `json:"storePhoneNumber"`
	ShopPath         string `json:"shopPath"`
}

// StoreProfileSummary is the subset of the store profile sent with payments
type StoreProfileSummary struct {
	StoreHash     string `json:"storeHash,omitempty"`
	StoreID       string `json:"storeId,omitempty"`
	StoreLanguage string `json:"storeLanguage,omitempty"`
	StoreName     string `json:"storeName,omitempty"`
}

// Summary returns the fields of the profile shared with the payment gateway
func (p StoreProfile) Summary() StoreProfileSummary {
	return StoreProfileSummary{
		StoreHash:     p.StoreHash,
		StoreID:       p.StoreID,
		StoreLanguage: p.StoreLanguage,
		StoreName:     p.StoreName,
	}
}

type StoreCurrency struct {
	Code          string `json:"code"`
	DecimalPlaces int    `json:"decimalPlaces"`
	Symbol        string `json:"symbolLocation,omitempty"`
}

type CheckoutSettings struct {
	EnableOrderComments      bool `json:"enableOrderComments"`
	EnableTermsAndConditions bool `json:"enableTermsAndConditions"`
	GuestCheckoutEnabled     bool `json:"guestCheckoutEnabled"`
	HasMultiShippingEnabled  bool `json:"hasMultiShippingEnabled"`
	IsCardVaultingEnabled    bool `json:"isCardVaultingEnabled"`
}

type PaymentSettings struct {
	BigpayBaseURL string `json:"bigpayBaseUrl"`
}

type Country struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	HasPostalCodes bool     `json:"hasPostalCodes"`
	RequiresState  bool     `json:"requiresState"`
	Subdivisions   []Region `json:"subdivisions"`
}

type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountryResponse wraps country lists returned by the internal API
type CountryResponse struct {
	Data []Country `json:"data"`
}
