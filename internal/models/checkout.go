package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Checkout is the storefront checkout resource
type Checkout struct {
	ID                         string            `json:"id"`
	Cart                       Cart              `json:"cart"`
	Customer                   Customer          `json:"customer"`
	CustomerMessage            string            `json:"customerMessage"`
	BillingAddress             *Address          `json:"billingAddress,omitempty"`
	Consignments               []Consignment     `json:"consignments"`
	Taxes                      []Tax             `json:"taxes"`
	Discounts                  []Discount        `json:"discounts"`
	Coupons                    []Coupon          `json:"coupons"`
	OrderID                    *int64            `json:"orderId,omitempty"`
	ShippingCostTotal          decimal.Decimal   `json:"shippingCostTotal"`
	ShippingCostBeforeDiscount decimal.Decimal   `json:"shippingCostBeforeDiscount"`
	HandlingCostTotal          decimal.Decimal   `json:"handlingCostTotal"`
	TaxTotal                   decimal.Decimal   `json:"taxTotal"`
	Subtotal                   decimal.Decimal   `json:"subtotal"`
	GrandTotal                 decimal.Decimal   `json:"grandTotal"`
	GiftCertificates           []GiftCertificate `json:"giftCertificates"`
	BalanceDue                 decimal.Decimal   `json:"balanceDue"`
	CreatedTime                time.Time         `json:"createdTime"`
	UpdatedTime                time.Time         `json:"updatedTime"`
	Payments                   []CheckoutPayment `json:"payments,omitempty"`
	Promotions                 []Promotion       `json:"promotions,omitempty"`
}

// Customer attached to a checkout
type Customer struct {
	ID          int64           `json:"id"`
	Addresses   []Address       `json:"addresses"`
	StoreCredit decimal.Decimal `json:"storeCredit"`
	Email       string          `json:"email"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	FullName    string          `json:"fullName"`
	IsGuest     bool            `json:"isGuest"`
}

type Tax struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type Discount struct {
	ID               string          `json:"id"`
	DiscountedAmount decimal.Decimal `json:"discountedAmount"`
}

type Coupon struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	CouponType       string          `json:"couponType"`
	DisplayName      string          `json:"displayName"`
	DiscountedAmount decimal.Decimal `json:"discountedAmount"`
}

// GiftCertificate applied to a checkout
type GiftCertificate struct {
	Code      string          `json:"code"`
	Balance   decimal.Decimal `json:"balance"`
	Remaining decimal.Decimal `json:"remaining"`
	Used      decimal.Decimal `json:"used"`
	Purchased string          `json:"purchaseDate,omitempty"`
}

type Promotion struct {
	Banners []Banner `json:"banners"`
}

type Banner struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Payment steps reported by the API
const (
	PaymentStepAcknowledge = "ACKNOWLEDGE"
	PaymentStepFinalize    = "FINALIZE"
	PaymentStepInitialize  = "INITIALIZE"

	// PaymentStatusPrefix turns a payment step into a normalized status
	PaymentStatusPrefix = "PAYMENT_STATUS_"
)

// Reserved payment provider ids
const (
	ProviderStoreCredit     = "storecredit"
	ProviderGiftCertificate = "giftcertificate"
)

// CheckoutPayment is a payment already attached to the checkout
type CheckoutPayment struct {
	ProviderID   string        `json:"providerId"`
	GatewayID    string        `json:"gatewayId,omitempty"`
	ProviderType string        `json:"providerType,omitempty"`
	Detail       PaymentDetail `json:"detail"`
}

type PaymentDetail struct {
	Step         string          `json:"step,omitempty"`
	Instructions string          `json:"instructions,omitempty"`
	Code         string          `json:"code,omitempty"`
	Remaining    decimal.Decimal `json:"remaining"`
}
