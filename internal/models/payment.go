package models

// Payment method types
const (
	PaymentTypeAPI     = "PAYMENT_TYPE_API"
	PaymentTypeHosted  = "PAYMENT_TYPE_HOSTED"
	PaymentTypeOffline = "PAYMENT_TYPE_OFFLINE"
)

// MethodMultiOption marks a method that fronts several options of one gateway
const MethodMultiOption = "multi-option"

// PaymentMethodKind distinguishes payment method variants
type PaymentMethodKind int

const (
	PaymentMethodKindStandard PaymentMethodKind = iota
	PaymentMethodKindMultiOption
)

type PaymentMethod struct {
	ID                 string                    `json:"id"`
	Gateway            string                    `json:"gateway,omitempty"`
	Method             string                    `json:"method"`
	Type               string                    `json:"type"`
	LogoURL            string                    `json:"logoUrl,omitempty"`
	SupportedCards     []string                  `json:"supportedCards"`
	Config             PaymentMethodConfig       `json:"config"`
	ClientToken        string                    `json:"clientToken,omitempty"`
	InitializationData *PaymentInitializationData `json:"initializationData,omitempty"`
}

type PaymentMethodConfig struct {
	DisplayName       string `json:"displayName"`
	CardCode          bool   `json:"cardCode"`
	TestMode          bool   `json:"testMode"`
	IsVaultingEnabled bool   `json:"isVaultingEnabled"`
	MerchantID        string `json:"merchantId,omitempty"`
	RedirectURL       string `json:"redirectUrl,omitempty"`
}

type PaymentInitializationData struct {
	Nonce string `json:"nonce,omitempty"`
}

// Kind reports the variant of the payment method
func (m PaymentMethod) Kind() PaymentMethodKind {
	if m.Method == MethodMultiOption {
		return PaymentMethodKindMultiOption
	}
	return PaymentMethodKindStandard
}

// Normalize applies the variant's normalization rule. A multi-option method
// without a gateway uses its own id as the gateway.
func (m PaymentMethod) Normalize() PaymentMethod {
	switch m.Kind() {
	case PaymentMethodKindMultiOption:
		if m.Gateway == "" {
			m.Gateway = m.ID
		}
	}
	return m
}

// Nonce returns the nonce from initialization data, if any
func (m PaymentMethod) Nonce() string {
	if m.InitializationData == nil {
		return ""
	}
	return m.InitializationData.Nonce
}

// PaymentMethodsMeta is returned alongside the payment method catalog
type PaymentMethodsMeta struct {
	Request *PaymentRequestMeta `json:"request,omitempty"`
}

type PaymentRequestMeta struct {
	DeviceSessionID string `json:"deviceSessionId,omitempty"`
	SessionHash     string `json:"sessionHash,omitempty"`
	GeoCountryCode  string `json:"geoCountryCode,omitempty"`
}

// PaymentID identifies the payment method chosen for the checkout
type PaymentID struct {
	ProviderID string
	GatewayID  string
}

// Payment is constructed by the shopper per submission and never stored
type Payment struct {
	MethodID    string
	GatewayID   string
	PaymentData PaymentInstrument
}

// PaymentInstrument is the method specific payment data
type PaymentInstrument interface {
	paymentInstrument()
}

type CreditCardInstrument struct {
	CCExpiry             CardExpiry `json:"ccExpiry"`
	CCName               string     `json:"ccName"`
	CCNumber             string     `json:"ccNumber"`
	CCType               string     `json:"ccType"`
	CCCvv                string     `json:"ccCvv,omitempty"`
	ShouldSaveInstrument bool       `json:"shouldSaveInstrument,omitempty"`
}

type CardExpiry struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

type VaultedInstrument struct {
	InstrumentID string `json:"instrumentId"`
	CCCvv        string `json:"ccCvv,omitempty"`
}

type NonceInstrument struct {
	Nonce                string `json:"nonce"`
	DeviceSessionID      string `json:"deviceSessionId,omitempty"`
	ShouldSaveInstrument bool   `json:"shouldSaveInstrument,omitempty"`
}

func (CreditCardInstrument) paymentInstrument() {}
func (VaultedInstrument) paymentInstrument()    {}
func (NonceInstrument) paymentInstrument()      {}

// IsVaultedInstrument reports whether the payment data refers to a stored instrument
func IsVaultedInstrument(data PaymentInstrument) bool {
	switch v := data.(type) {
	case VaultedInstrument:
		return v.InstrumentID != ""
	case *VaultedInstrument:
		return v != nil && v.InstrumentID != ""
	default:
		return false
	}
}

// PaymentRequestBody is sent to the payment gateway
type PaymentRequestBody struct {
	AuthToken       string                  `json:"authToken"`
	BillingAddress  *InternalAddress        `json:"billingAddress,omitempty"`
	Cart            *InternalCart           `json:"cart,omitempty"`
	Customer        *Customer               `json:"customer,omitempty"`
	Order           *InternalOrder          `json:"order,omitempty"`
	OrderMeta       *OrderMeta              `json:"orderMeta,omitempty"`
	Payment         PaymentInstrument       `json:"payment"`
	PaymentMethod   *PaymentMethod          `json:"paymentMethod,omitempty"`
	QuoteMeta       QuoteMeta               `json:"quoteMeta"`
	ShippingAddress *InternalAddress        `json:"shippingAddress,omitempty"`
	ShippingOption  *InternalShippingOption `json:"shippingOption,omitempty"`
	Source          string                  `json:"source"`
	Store           StoreProfileSummary     `json:"store"`
}

type QuoteMeta struct {
	Request *PaymentRequestMeta `json:"request,omitempty"`
}

// PaymentResponse is the gateway's answer to a payment submission
type PaymentResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
}
