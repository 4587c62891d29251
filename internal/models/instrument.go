package models

// Instrument is a vaulted payment instrument
type Instrument struct {
	ID                     string `json:"bigpayToken"`
	Provider               string `json:"provider"`
	IIN                    string `json:"iin"`
	Last4                  string `json:"last4"`
	ExpiryMonth            string `json:"expiryMonth"`
	ExpiryYear             string `json:"expiryYear"`
	Brand                  string `json:"brand"`
	TrustedShippingAddress bool   `json:"trustedShippingAddress"`
	DefaultInstrument      bool   `json:"defaultInstrument"`
}

type InstrumentsResponse struct {
	VaultedInstruments []Instrument `json:"vaultedInstruments"`
}

// InstrumentMeta holds the vault access token used for instrument calls
type InstrumentMeta struct {
	VaultAccessToken  string `json:"vaultAccessToken"`
	VaultAccessExpiry int64  `json:"vaultAccessExpiry"`
}

// VaultAccessToken is issued by the storefront for instrument access
type VaultAccessToken struct {
	ID        string `json:"id"`
	ExpiresAt int64  `json:"expiresAt"`
}
