package models

import "github.com/shopspring/decimal"

// Line item types of the internal cart and order shapes
const (
	ItemTypePhysical        = "ItemPhysicalEntity"
	ItemTypeDigital         = "ItemDigitalEntity"
	ItemTypeGiftCertificate = "ItemGiftCertificateEntity"
)

// InternalLineItem is a flattened line item
type InternalLineItem struct {
	ID                         ItemID          `json:"id"`
	Type                       string          `json:"type"`
	Name                       string          `json:"name"`
	ImageURL                   string          `json:"imageUrl"`
	Quantity                   int             `json:"quantity"`
	Amount                     decimal.Decimal `json:"amount"`
	AmountAfterDiscount        decimal.Decimal `json:"amountAfterDiscount"`
	Discount                   decimal.Decimal `json:"discount"`
	IntegerAmount              int64           `json:"integerAmount"`
	IntegerAmountAfterDiscount int64           `json:"integerAmountAfterDiscount"`
	IntegerDiscount            int64           `json:"integerDiscount"`
	VariantID                  *int64          `json:"variantId"`
	Attributes                 []Attribute     `json:"attributes"`
	Sender                     *Contact        `json:"sender,omitempty"`
	Recipient                  *Contact        `json:"recipient,omitempty"`
}

type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type InternalTax struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type InternalCoupon struct {
	Code             string          `json:"code"`
	DiscountType     string          `json:"discountType"`
	DisplayName      string          `json:"displayName"`
	DiscountedAmount decimal.Decimal `json:"discountedAmount"`
}

type InternalCouponSummary struct {
	Coupons          []InternalCoupon `json:"coupons"`
	DiscountedAmount decimal.Decimal  `json:"discountedAmount"`
}

type InternalGiftCertificate struct {
	Code             string          `json:"code"`
	DiscountedAmount decimal.Decimal `json:"discountedAmount"`
	Remaining        decimal.Decimal `json:"remaining"`
}

type InternalGiftCertificateSummary struct {
	AppliedGiftCertificates map[string]InternalGiftCertificate `json:"appliedGiftCertificates"`
	TotalDiscountedAmount   decimal.Decimal                    `json:"totalDiscountedAmount"`
}

type InternalShippingAmount struct {
	Amount                      decimal.Decimal `json:"amount"`
	IntegerAmount               int64           `json:"integerAmount"`
	AmountBeforeDiscount        decimal.Decimal `json:"amountBeforeDiscount"`
	IntegerAmountBeforeDiscount int64           `json:"integerAmountBeforeDiscount"`
	Required                    bool            `json:"required"`
}

// InternalCart is the normalized view of a checkout's cart and totals
type InternalCart struct {
	ID                    string                         `json:"id"`
	Items                 []InternalLineItem             `json:"items"`
	Currency              string                         `json:"currency"`
	Coupon                InternalCouponSummary          `json:"coupon"`
	Discount              Amount                         `json:"discount"`
	DiscountNotifications []string                       `json:"discountNotifications"`
	GiftCertificate       InternalGiftCertificateSummary `json:"giftCertificate"`
	GrandTotal            Amount                         `json:"grandTotal"`
	Handling              Amount                         `json:"handling"`
	Shipping              InternalShippingAmount         `json:"shipping"`
	StoreCredit           Amount                         `json:"storeCredit"`
	Subtotal              Amount                         `json:"subtotal"`
	TaxSubtotal           Amount                         `json:"taxSubtotal"`
	Taxes                 []InternalTax                  `json:"taxes"`
	TaxTotal              Amount                         `json:"taxTotal"`
}

type InternalOrderPayment struct {
	ID       string `json:"id,omitempty"`
	Gateway  string `json:"gateway,omitempty"`
	Status   string `json:"status,omitempty"`
	HelpText string `json:"helpText,omitempty"`
}

// InternalOrder is the normalized view of an order
type InternalOrder struct {
	ID                   int64                          `json:"id"`
	OrderID              int64                          `json:"orderId"`
	Items                []InternalLineItem             `json:"items"`
	Currency             string                         `json:"currency"`
	CustomerCanBeCreated bool                           `json:"customerCanBeCreated"`
	Coupon               InternalCouponSummary          `json:"coupon"`
	Discount             Amount                         `json:"discount"`
	GiftCertificate      InternalGiftCertificateSummary `json:"giftCertificate"`
	GrandTotal           Amount                         `json:"grandTotal"`
	Handling             Amount                         `json:"handling"`
	Shipping             Amount                         `json:"shipping"`
	StoreCredit          Amount                         `json:"storeCredit"`
	Subtotal             Amount                         `json:"subtotal"`
	Taxes                []InternalTax                  `json:"taxes"`
	TaxTotal             Amount                         `json:"taxTotal"`
	Payment              InternalOrderPayment           `json:"payment"`
	Status               string                         `json:"status"`
	HasDigitalItems      bool                           `json:"hasDigitalItems"`
	IsDownloadable       bool                           `json:"isDownloadable"`
	IsComplete           bool                           `json:"isComplete"`
	CustomerMessage      string                         `json:"customerMessage"`
}

type InternalAddress struct {
	ID           string        `json:"id"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Company      string        `json:"company"`
	AddressLine1 string        `json:"addressLine1"`
	AddressLine2 string        `json:"addressLine2"`
	City         string        `json:"city"`
	Province     string        `json:"province"`
	ProvinceCode string        `json:"provinceCode"`
	PostCode     string        `json:"postCode"`
	Country      string        `json:"country"`
	CountryCode  string        `json:"countryCode"`
	Phone        string        `json:"phone"`
	CustomFields []CustomField `json:"customFields"`
}

type InternalShippingOption struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Module        string          `json:"module"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl"`
	TransitTime   string          `json:"transitTime"`
	IsRecommended bool            `json:"isRecommended"`
	Selected      bool            `json:"selected"`
}

// InternalShippingOptionList maps consignment ids to their options
type InternalShippingOptionList map[string][]InternalShippingOption
