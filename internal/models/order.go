package models

import "github.com/shopspring/decimal"

// Order statuses
const (
	OrderStatusIncomplete = "INCOMPLETE"
	OrderStatusPending    = "PENDING"
	OrderStatusCompleted  = "COMPLETED"
)

// Order is the storefront order resource
type Order struct {
	OrderID               int64           `json:"orderId"`
	CartID                string          `json:"cartId"`
	Currency              Currency        `json:"currency"`
	IsTaxIncluded         bool            `json:"isTaxIncluded"`
	BaseAmount            decimal.Decimal `json:"baseAmount"`
	DiscountAmount        decimal.Decimal `json:"discountAmount"`
	ShippingCostTotal     decimal.Decimal `json:"shippingCostTotal"`
	HandlingCostTotal     decimal.Decimal `json:"handlingCostTotal"`
	GiftWrappingCostTotal decimal.Decimal `json:"giftWrappingCostTotal"`
	TaxTotal              decimal.Decimal `json:"taxTotal"`
	OrderAmount           decimal.Decimal `json:"orderAmount"`
	OrderAmountAsInteger  int64           `json:"orderAmountAsInteger"`
	Taxes                 []Tax           `json:"taxes"`
	Coupons               []Coupon        `json:"coupons"`
	LineItems             LineItemMap     `json:"lineItems"`
	CustomerID            int64           `json:"customerId"`
	BillingAddress        Address         `json:"billingAddress"`
	Status                string          `json:"status"`
	CustomerCanBeCreated  bool            `json:"customerCanBeCreated"`
	HasDigitalItems       bool            `json:"hasDigitalItems"`
	IsDownloadable        bool            `json:"isDownloadable"`
	IsComplete            bool            `json:"isComplete"`
	Payments              []OrderPayment  `json:"payments,omitempty"`
	CustomerMessage       string          `json:"customerMessage"`
}

type OrderPayment struct {
	ProviderID   string          `json:"providerId"`
	GatewayID    string          `json:"gatewayId,omitempty"`
	ProviderType string          `json:"providerType,omitempty"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Detail       PaymentDetail   `json:"detail"`
}

// OrderRequestBody is what a shopper submits to place an order
type OrderRequestBody struct {
	CustomerMessage string   `json:"customerMessage,omitempty"`
	UseStoreCredit  bool     `json:"useStoreCredit"`
	ExternalSource  string   `json:"externalSource,omitempty"`
	Payment         *Payment `json:"-"`
}

// InternalOrderRequestBody is the body sent to the order submission endpoint.
// Payment data is never included; it travels to the payment gateway separately.
type InternalOrderRequestBody struct {
	CartID          string                       `json:"cartId"`
	CustomerMessage string                       `json:"customerMessage,omitempty"`
	UseStoreCredit  bool                         `json:"useStoreCredit"`
	ExternalSource  string                       `json:"externalSource,omitempty"`
	Payment         *InternalOrderPaymentRequest `json:"payment,omitempty"`
}

type InternalOrderPaymentRequest struct {
	Name    string `json:"name"`
	Gateway string `json:"gateway,omitempty"`
}

// SubmitOrderResponse is returned by the order submission endpoint
type SubmitOrderResponse struct {
	Data struct {
		Order SubmittedOrder `json:"order"`
	} `json:"data"`
	Meta struct {
		DeviceFingerprint string `json:"deviceFingerprint,omitempty"`
	} `json:"meta"`
}

type SubmittedOrder struct {
	OrderID     int64                `json:"orderId"`
	Status      string               `json:"status"`
	CallbackURL string               `json:"callbackUrl,omitempty"`
	Payment     InternalOrderPayment `json:"payment"`
}

// OrderMeta is session data attached to an order outside its resource body
type OrderMeta struct {
	OrderID           *int64                `json:"orderId,omitempty"`
	Token             string                `json:"token,omitempty"`
	DeviceFingerprint string                `json:"deviceFingerprint,omitempty"`
	CallbackURL       string                `json:"callbackUrl,omitempty"`
	Payment           *InternalOrderPayment `json:"payment,omitempty"`
}
