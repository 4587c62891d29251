package models

import (
	"github.com/shopspring/decimal"
)

// MapToInternalLineItems flattens a line item map into internal line items.
// Physical items come first, then digital items, then gift certificates.
func MapToInternalLineItems(items LineItemMap, decimalPlaces int) []InternalLineItem {
	result := make([]InternalLineItem, 0,
		len(items.PhysicalItems)+len(items.DigitalItems)+len(items.GiftCertificates))

	for _, item := range items.PhysicalItems {
		result = append(result, mapToInternalLineItem(item, ItemTypePhysical, decimalPlaces))
	}
	for _, item := range items.DigitalItems {
		result = append(result, mapToInternalLineItem(item, ItemTypeDigital, decimalPlaces))
	}
	for _, item := range items.GiftCertificates {
		result = append(result, mapToInternalGiftCertificateItem(item, decimalPlaces))
	}

	return result
}

func mapToInternalLineItem(item LineItem, itemType string, decimalPlaces int) InternalLineItem {
	variantID := item.VariantID
	attributes := make([]Attribute, 0, len(item.Options))
	for _, option := range item.Options {
		attributes = append(attributes, Attribute{Name: option.Name, Value: option.Value})
	}

	return InternalLineItem{
		ID:                         item.ID,
		Type:                       itemType,
		Name:                       item.Name,
		ImageURL:                   item.ImageURL,
		Quantity:                   item.Quantity,
		Amount:                     item.ExtendedListPrice,
		AmountAfterDiscount:        item.ExtendedSalePrice,
		Discount:                   item.DiscountAmount,
		IntegerAmount:              ToInteger(item.ExtendedListPrice, decimalPlaces),
		IntegerAmountAfterDiscount: ToInteger(item.ExtendedSalePrice, decimalPlaces),
		IntegerDiscount:            ToInteger(item.DiscountAmount, decimalPlaces),
		VariantID:                  &variantID,
		Attributes:                 attributes,
	}
}

func mapToInternalGiftCertificateItem(item GiftCertificateItem, decimalPlaces int) InternalLineItem {
	sender := item.Sender
	recipient := item.Recipient

	return InternalLineItem{
		ID:                         item.ID,
		Type:                       ItemTypeGiftCertificate,
		Name:                       item.Name,
		Quantity:                   1,
		Amount:                     item.Amount,
		AmountAfterDiscount:        item.Amount,
		Discount:                   decimal.Zero,
		IntegerAmount:              ToInteger(item.Amount, decimalPlaces),
		IntegerAmountAfterDiscount: ToInteger(item.Amount, decimalPlaces),
		Attributes:                 []Attribute{},
		Sender:                     &sender,
		Recipient:                  &recipient,
	}
}

func mapToInternalCoupons(coupons []Coupon) InternalCouponSummary {
	summary := InternalCouponSummary{
		Coupons:          make([]InternalCoupon, 0, len(coupons)),
		DiscountedAmount: decimal.Zero,
	}
	for _, coupon := range coupons {
		summary.Coupons = append(summary.Coupons, InternalCoupon{
			Code:             coupon.Code,
			DiscountType:     coupon.CouponType,
			DisplayName:      coupon.DisplayName,
			DiscountedAmount: coupon.DiscountedAmount,
		})
		summary.DiscountedAmount = summary.DiscountedAmount.Add(coupon.DiscountedAmount)
	}
	return summary
}

func mapToInternalTaxes(taxes []Tax) []InternalTax {
	result := make([]InternalTax, 0, len(taxes))
	for _, tax := range taxes {
		result = append(result, InternalTax{Name: tax.Name, Amount: tax.Amount})
	}
	return result
}

// MapToInternalCart maps a checkout into the normalized cart shape
func MapToInternalCart(checkout Checkout) InternalCart {
	places := checkout.Cart.Currency.DecimalPlaces

	giftCertificates := InternalGiftCertificateSummary{
		AppliedGiftCertificates: make(map[string]InternalGiftCertificate, len(checkout.GiftCertificates)),
		TotalDiscountedAmount:   decimal.Zero,
	}
	for _, gc := range checkout.GiftCertificates {
		giftCertificates.AppliedGiftCertificates[gc.Code] = InternalGiftCertificate{
			Code:             gc.Code,
			DiscountedAmount: gc.Used,
			Remaining:        gc.Remaining,
		}
		giftCertificates.TotalDiscountedAmount = giftCertificates.TotalDiscountedAmount.Add(gc.Used)
	}

	shippingRequired := false
	for _, item := range checkout.Cart.LineItems.PhysicalItems {
		if item.IsShippingRequired {
			shippingRequired = true
			break
		}
	}

	return InternalCart{
		ID:                    checkout.Cart.ID,
		Items:                 MapToInternalLineItems(checkout.Cart.LineItems, places),
		Currency:              checkout.Cart.Currency.Code,
		Coupon:                mapToInternalCoupons(checkout.Coupons),
		Discount:              NewAmount(checkout.Cart.DiscountAmount, places),
		DiscountNotifications: []string{},
		GiftCertificate:       giftCertificates,
		GrandTotal:            NewAmount(checkout.GrandTotal, places),
		Handling:              NewAmount(checkout.HandlingCostTotal, places),
		Shipping: InternalShippingAmount{
			Amount:                      checkout.ShippingCostTotal,
			IntegerAmount:               ToInteger(checkout.ShippingCostTotal, places),
			AmountBeforeDiscount:        checkout.ShippingCostBeforeDiscount,
			IntegerAmountBeforeDiscount: ToInteger(checkout.ShippingCostBeforeDiscount, places),
			Required:                    shippingRequired,
		},
		StoreCredit: NewAmount(checkout.Customer.StoreCredit, places),
		Subtotal:    NewAmount(checkout.Subtotal, places),
		TaxSubtotal: NewAmount(checkout.TaxTotal, places),
		Taxes:       mapToInternalTaxes(checkout.Taxes),
		TaxTotal:    NewAmount(checkout.TaxTotal, places),
	}
}

// MapToInternalOrder maps an order into the normalized order shape
func MapToInternalOrder(order Order) InternalOrder {
	places := order.Currency.DecimalPlaces

	giftCertificates := InternalGiftCertificateSummary{
		AppliedGiftCertificates: map[string]InternalGiftCertificate{},
		TotalDiscountedAmount:   decimal.Zero,
	}
	storeCredit := decimal.Zero
	var payment InternalOrderPayment

	for _, p := range order.Payments {
		switch p.ProviderID {
		case ProviderGiftCertificate:
			giftCertificates.AppliedGiftCertificates[p.Detail.Code] = InternalGiftCertificate{
				Code:             p.Detail.Code,
				DiscountedAmount: p.Amount,
				Remaining:        p.Detail.Remaining,
			}
			giftCertificates.TotalDiscountedAmount = giftCertificates.TotalDiscountedAmount.Add(p.Amount)
		case ProviderStoreCredit:
			storeCredit = storeCredit.Add(p.Amount)
		default:
			if payment.ID == "" {
				payment = mapToInternalOrderPayment(p)
			}
		}
	}

	return InternalOrder{
		ID:                   order.OrderID,
		OrderID:              order.OrderID,
		Items:                MapToInternalLineItems(order.LineItems, places),
		Currency:             order.Currency.Code,
		CustomerCanBeCreated: order.CustomerCanBeCreated,
		Coupon:               mapToInternalCoupons(order.Coupons),
		Discount:             NewAmount(order.DiscountAmount, places),
		GiftCertificate:      giftCertificates,
		GrandTotal:           Amount{Amount: order.OrderAmount, IntegerAmount: order.OrderAmountAsInteger},
		Handling:             NewAmount(order.HandlingCostTotal, places),
		Shipping:             NewAmount(order.ShippingCostTotal, places),
		StoreCredit:          NewAmount(storeCredit, places),
		Subtotal:             NewAmount(order.BaseAmount, places),
		Taxes:                mapToInternalTaxes(order.Taxes),
		TaxTotal:             NewAmount(order.TaxTotal, places),
		Payment:              payment,
		Status:               order.Status,
		HasDigitalItems:      order.HasDigitalItems,
		IsDownloadable:       order.IsDownloadable,
		IsComplete:           order.IsComplete,
		CustomerMessage:      order.CustomerMessage,
	}
}

func mapToInternalOrderPayment(p OrderPayment) InternalOrderPayment {
	payment := InternalOrderPayment{
		ID:       p.ProviderID,
		Gateway:  p.GatewayID,
		HelpText: p.Detail.Instructions,
	}
	if p.Detail.Step != "" {
		payment.Status = PaymentStatusPrefix + p.Detail.Step
	}
	return payment
}

// MapToInternalAddress maps an address. A non-empty consignmentID replaces the address id.
func MapToInternalAddress(address Address, consignmentID string) InternalAddress {
	id := address.ID
	if consignmentID != "" {
		id = consignmentID
	}

	customFields := address.CustomFields
	if customFields == nil {
		customFields = []CustomField{}
	}

	return InternalAddress{
		ID:           id,
		FirstName:    address.FirstName,
		LastName:     address.LastName,
		Company:      address.Company,
		AddressLine1: address.Address1,
		AddressLine2: address.Address2,
		City:         address.City,
		Province:     address.StateOrProvince,
		ProvinceCode: address.StateOrProvinceCode,
		PostCode:     address.PostalCode,
		Country:      address.Country,
		CountryCode:  address.CountryCode,
		Phone:        address.Phone,
		CustomFields: customFields,
	}
}

// MapToInternalShippingOption maps a shipping option
func MapToInternalShippingOption(option ShippingOption, selected bool) InternalShippingOption {
	return InternalShippingOption{
		ID:            option.ID,
		Description:   option.Description,
		Module:        option.Type,
		Price:         option.Cost,
		ImageURL:      option.ImageURL,
		TransitTime:   option.TransitTime,
		IsRecommended: option.IsRecommended,
		Selected:      selected,
	}
}
