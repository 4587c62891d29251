package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleCheckout() Checkout {
	return Checkout{
		ID: "c1",
		Cart: Cart{
			ID:             "cart1",
			Currency:       Currency{Code: "USD", DecimalPlaces: 2},
			DiscountAmount: dec("10"),
			LineItems: LineItemMap{
				PhysicalItems: []LineItem{{
					ID:                 "666",
					VariantID:          71,
					Name:               "Canvas Laundry Cart",
					Quantity:           1,
					ExtendedListPrice:  dec("200"),
					ExtendedSalePrice:  dec("200"),
					DiscountAmount:     dec("10"),
					IsShippingRequired: true,
					Options:            []LineItemOption{{Name: "n", Value: "v"}},
				}},
				GiftCertificates: []GiftCertificateItem{{
					ID:        "bd391ead",
					Name:      "$100 Gift Certificate",
					Amount:    dec("100"),
					Sender:    Contact{Name: "pablo", Email: "pa@blo.com"},
					Recipient: Contact{Name: "luis", Email: "lu@is.com"},
				}},
			},
		},
		Customer:          Customer{ID: 4, StoreCredit: dec("5")},
		Coupons:           []Coupon{{Code: "savebig", CouponType: "percentage", DiscountedAmount: dec("5")}},
		GiftCertificates:  []GiftCertificate{{Code: "gc", Used: dec("7"), Remaining: dec("3")}},
		ShippingCostTotal: dec("15"),
		HandlingCostTotal: dec("8"),
		Subtotal:          dec("190"),
		GrandTotal:        dec("190"),
		TaxTotal:          dec("3"),
		Taxes:             []Tax{{Name: "Tax", Amount: dec("3")}},
	}
}

func TestMapToInternalCart(t *testing.T) {
	cart := MapToInternalCart(sampleCheckout())

	assert.Equal(t, "cart1", cart.ID)
	assert.Equal(t, "USD", cart.Currency)
	assert.Equal(t, int64(19000), cart.GrandTotal.IntegerAmount)
	assert.Equal(t, int64(800), cart.Handling.IntegerAmount)
	assert.Equal(t, int64(1500), cart.Shipping.IntegerAmount)
	assert.True(t, cart.Shipping.Required)
	assert.Equal(t, int64(500), cart.StoreCredit.IntegerAmount)
	assert.True(t, cart.Coupon.DiscountedAmount.Equal(dec("5")))
	assert.True(t, cart.GiftCertificate.TotalDiscountedAmount.Equal(dec("7")))
	assert.Contains(t, cart.GiftCertificate.AppliedGiftCertificates, "gc")

	require.Len(t, cart.Items, 2)
	assert.Equal(t, ItemTypePhysical, cart.Items[0].Type)
	assert.Equal(t, int64(20000), cart.Items[0].IntegerAmount)
	assert.Equal(t, int64(1000), cart.Items[0].IntegerDiscount)
	require.NotNil(t, cart.Items[0].VariantID)
	assert.Equal(t, int64(71), *cart.Items[0].VariantID)
	assert.Equal(t, []Attribute{{Name: "n", Value: "v"}}, cart.Items[0].Attributes)

	assert.Equal(t, ItemTypeGiftCertificate, cart.Items[1].Type)
	assert.Equal(t, 1, cart.Items[1].Quantity)
	assert.Nil(t, cart.Items[1].VariantID)
	assert.Equal(t, "luis", cart.Items[1].Recipient.Name)
}

func TestMapToInternalCartIsTotalForEmptyCheckout(t *testing.T) {
	cart := MapToInternalCart(Checkout{})

	assert.NotNil(t, cart.Items)
	assert.NotNil(t, cart.Taxes)
	assert.NotNil(t, cart.Coupon.Coupons)
	assert.NotNil(t, cart.DiscountNotifications)
	assert.NotNil(t, cart.GiftCertificate.AppliedGiftCertificates)
	assert.False(t, cart.Shipping.Required)
}

func TestMapToInternalOrder(t *testing.T) {
	order := Order{
		OrderID:              295,
		Currency:             Currency{Code: "USD", DecimalPlaces: 2},
		OrderAmount:          dec("190"),
		OrderAmountAsInteger: 19000,
		Status:               OrderStatusIncomplete,
		Payments: []OrderPayment{
			{ProviderID: ProviderGiftCertificate, Amount: dec("7"), Detail: PaymentDetail{Code: "gc", Remaining: dec("3")}},
			{ProviderID: ProviderStoreCredit, Amount: dec("2")},
			{ProviderID: "authorizenet", GatewayID: "", Amount: dec("181"), Detail: PaymentDetail{Step: PaymentStepFinalize, Instructions: "pay"}},
		},
	}

	internal := MapToInternalOrder(order)

	assert.Equal(t, int64(295), internal.OrderID)
	assert.Equal(t, int64(19000), internal.GrandTotal.IntegerAmount)
	assert.Equal(t, int64(200), internal.StoreCredit.IntegerAmount)
	assert.True(t, internal.GiftCertificate.TotalDiscountedAmount.Equal(dec("7")))
	assert.Equal(t, InternalOrderPayment{
		ID:       "authorizenet",
		Status:   "PAYMENT_STATUS_FINALIZE",
		HelpText: "pay",
	}, internal.Payment)
}

func TestMapToInternalAddress(t *testing.T) {
	address := Address{ID: "55c96cda6f04c", FirstName: "Test", Address1: "12345 Testing Way", StateOrProvince: "California", PostalCode: "95555", CountryCode: "US"}

	internal := MapToInternalAddress(address, "")
	assert.Equal(t, "55c96cda6f04c", internal.ID)
	assert.Equal(t, "12345 Testing Way", internal.AddressLine1)
	assert.Equal(t, "California", internal.Province)
	assert.Equal(t, "95555", internal.PostCode)
	assert.NotNil(t, internal.CustomFields)

	assert.Equal(t, "consignment-1", MapToInternalAddress(address, "consignment-1").ID)
}

func TestMapToInternalShippingOption(t *testing.T) {
	option := ShippingOption{ID: "opt-1", Type: "shipping_flatrate", Description: "Flat Rate", Cost: dec("15")}

	internal := MapToInternalShippingOption(option, true)
	assert.Equal(t, "shipping_flatrate", internal.Module)
	assert.True(t, internal.Price.Equal(dec("15")))
	assert.True(t, internal.Selected)
}
