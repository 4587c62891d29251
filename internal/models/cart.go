package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID             string          `json:"id"`
	CustomerID     int64           `json:"customerId"`
	Email          string          `json:"email"`
	Currency       Currency        `json:"currency"`
	IsTaxIncluded  bool            `json:"isTaxIncluded"`
	BaseAmount     decimal.Decimal `json:"baseAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	CartAmount     decimal.Decimal `json:"cartAmount"`
	Coupons        []Coupon        `json:"coupons"`
	Discounts      []Discount      `json:"discounts"`
	LineItems      LineItemMap     `json:"lineItems"`
	CreatedTime    time.Time       `json:"createdTime"`
	UpdatedTime    time.Time       `json:"updatedTime"`
}

type Currency struct {
	Name          string `json:"name"`
	Code          string `json:"code"`
	Symbol        string `json:"symbol"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

// LineItemMap groups line items by kind
type LineItemMap struct {
	PhysicalItems    []LineItem            `json:"physicalItems"`
	DigitalItems     []LineItem            `json:"digitalItems"`
	GiftCertificates []GiftCertificateItem `json:"giftCertificates"`
}

type LineItem struct {
	ID                 ItemID           `json:"id"`
	VariantID          int64            `json:"variantId"`
	ProductID          int64            `json:"productId"`
	SKU                string           `json:"sku"`
	Name               string           `json:"name"`
	URL                string           `json:"url"`
	Quantity           int              `json:"quantity"`
	IsTaxable          bool             `json:"isTaxable"`
	ImageURL           string           `json:"imageUrl"`
	Discounts          []Discount       `json:"discounts"`
	DiscountAmount     decimal.Decimal  `json:"discountAmount"`
	CouponAmount       decimal.Decimal  `json:"couponAmount"`
	ListPrice          decimal.Decimal  `json:"listPrice"`
	SalePrice          decimal.Decimal  `json:"salePrice"`
	ExtendedListPrice  decimal.Decimal  `json:"extendedListPrice"`
	ExtendedSalePrice  decimal.Decimal  `json:"extendedSalePrice"`
	IsShippingRequired bool             `json:"isShippingRequired"`
	AddedByPromotion   bool             `json:"addedByPromotion"`
	Options            []LineItemOption `json:"options,omitempty"`
}

type LineItemOption struct {
	Name    string `json:"name"`
	NameID  int64  `json:"nameId"`
	Value   string `json:"value"`
	ValueID int64  `json:"valueId"`
}

type GiftCertificateItem struct {
	ID        ItemID          `json:"id"`
	Name      string          `json:"name"`
	Theme     string          `json:"theme"`
	Amount    decimal.Decimal `json:"amount"`
	Taxable   bool            `json:"taxable"`
	Sender    Contact         `json:"sender"`
	Recipient Contact         `json:"recipient"`
	Message   string          `json:"message"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
