// Package fixture provides canned API payloads and store states for tests.
package fixture

import (
	"time"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/state"

	"github.com/shopspring/decimal"
)

const (
	CheckoutID    = "b20deef40f9699e48671bbc3fef6ca44dc80e3c7"
	CartID        = "b20deef40f9699e48671bbc3fef6ca44dc80e3c7"
	ConsignmentID = "55c96cda6f04c"
	OrderID       = int64(295)
	OrderToken    = "t1"
	VaultToken    = "vt1"
	InstrumentID  = "123"
	StoreID       = "1504098821"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func BillingAddress() models.Address {
	return models.Address{
		ID:                  "55c96cda6f04c",
		FirstName:           "Test",
		LastName:            "Tester",
		Email:               "test@bigcommerce.com",
		Company:             "Bigcommerce",
		Address1:            "12345 Testing Way",
		City:                "Some City",
		StateOrProvince:     "California",
		StateOrProvinceCode: "CA",
		Country:             "United States",
		CountryCode:         "US",
		PostalCode:          "95555",
		Phone:               "555-555-5555",
		CustomFields:        []models.CustomField{},
	}
}

func ShippingAddress() models.Address {
	address := BillingAddress()
	address.ID = ""
	address.Email = ""
	return address
}

func ShippingOption() models.ShippingOption {
	return models.ShippingOption{
		ID:          "0:61d4bb52f746477e1d4fb411221318c3",
		Type:        "shipping_flatrate",
		Description: "Flat Rate",
		ImageURL:    "",
		Cost:        dec(15),
		TransitTime: "",
	}
}

func Consignment() models.Consignment {
	option := ShippingOption()
	return models.Consignment{
		ID:                       ConsignmentID,
		ShippingAddress:          ShippingAddress(),
		HandlingCost:             dec(8),
		ShippingCost:             dec(15),
		AvailableShippingOptions: []models.ShippingOption{option},
		SelectedShippingOption:   &option,
		LineItemIDs:              []models.ItemID{"666"},
	}
}

func Cart() models.Cart {
	return models.Cart{
		ID:             CartID,
		CustomerID:     4,
		Email:          "foo@bar.com",
		Currency:       models.Currency{Name: "US Dollar", Code: "USD", Symbol: "$", DecimalPlaces: 2},
		BaseAmount:     dec(200),
		DiscountAmount: dec(10),
		CartAmount:     dec(190),
		Coupons:        []models.Coupon{},
		Discounts:      []models.Discount{},
		LineItems: models.LineItemMap{
			PhysicalItems: []models.LineItem{{
				ID:                 "666",
				VariantID:          71,
				ProductID:          103,
				SKU:                "CLC",
				Name:               "Canvas Laundry Cart",
				URL:                "/canvas-laundry-cart/",
				Quantity:           1,
				IsTaxable:          true,
				ImageURL:           "/images/canvas-laundry-cart.jpg",
				Discounts:          []models.Discount{},
				DiscountAmount:     dec(10),
				CouponAmount:       dec(0),
				ListPrice:          dec(200),
				SalePrice:          dec(200),
				ExtendedListPrice:  dec(200),
				ExtendedSalePrice:  dec(200),
				IsShippingRequired: true,
				Options:            []models.LineItemOption{{Name: "n", NameID: 1, Value: "v", ValueID: 3}},
			}},
			DigitalItems: []models.LineItem{},
			GiftCertificates: []models.GiftCertificateItem{{
				ID:        "bd391ead-8c58-4105-b00e-d75d233b429a",
				Name:      "$100 Gift Certificate",
				Theme:     "General",
				Amount:    dec(100),
				Sender:    models.Contact{Name: "pablo", Email: "pa@blo.com"},
				Recipient: models.Contact{Name: "luis", Email: "lu@is.com"},
				Message:   "Hi",
			}},
		},
		CreatedTime: time.Date(2018, 3, 6, 4, 41, 49, 0, time.UTC),
		UpdatedTime: time.Date(2018, 3, 7, 3, 44, 51, 0, time.UTC),
	}
}

func GuestCustomer() models.Customer {
	return models.Customer{
		ID:          0,
		Addresses:   []models.Address{},
		StoreCredit: dec(0),
		Email:       "test@bigcommerce.com",
		FirstName:   "",
		LastName:    "",
		FullName:    "",
		IsGuest:     true,
	}
}

// Checkout returns a loaded checkout with a grand total of 190
func Checkout() models.Checkout {
	billing := BillingAddress()
	orderID := OrderID
	return models.Checkout{
		ID:                         CheckoutID,
		Cart:                       Cart(),
		Customer:                   GuestCustomer(),
		BillingAddress:             &billing,
		Consignments:               []models.Consignment{Consignment()},
		Taxes:                      []models.Tax{{Name: "Tax", Amount: dec(3)}},
		Discounts:                  []models.Discount{},
		Coupons:                    []models.Coupon{},
		OrderID:                    &orderID,
		ShippingCostTotal:          dec(15),
		ShippingCostBeforeDiscount: dec(20),
		HandlingCostTotal:          dec(8),
		TaxTotal:                   dec(0),
		Subtotal:                   dec(190),
		GrandTotal:                 dec(190),
		GiftCertificates:           []models.GiftCertificate{{Code: "gc", Balance: dec(10), Remaining: dec(3), Used: dec(7)}},
		BalanceDue:                 dec(0),
		CreatedTime:                time.Date(2018, 3, 6, 4, 41, 49, 0, time.UTC),
		UpdatedTime:                time.Date(2018, 3, 7, 3, 44, 51, 0, time.UTC),
		Promotions:                 []models.Promotion{{Banners: []models.Banner{{Type: "upsell", Text: "foo"}}}},
	}
}

// CheckoutPayment is an acknowledged hosted payment for PaymentMethod()
func CheckoutPayment() models.CheckoutPayment {
	method := PaymentMethod()
	return models.CheckoutPayment{
		ProviderID:   method.ID,
		GatewayID:    method.Gateway,
		ProviderType: models.PaymentTypeHosted,
		Detail:       models.PaymentDetail{Step: models.PaymentStepAcknowledge},
	}
}

func CheckoutWithPayments() models.Checkout {
	checkout := Checkout()
	checkout.Payments = []models.CheckoutPayment{CheckoutPayment()}
	return checkout
}

func PaymentMethod() models.PaymentMethod {
	return models.PaymentMethod{
		ID:             "authorizenet",
		Method:         "credit-card",
		Type:           models.PaymentTypeAPI,
		SupportedCards: []string{"VISA", "AMEX", "MC"},
		Config: models.PaymentMethodConfig{
			DisplayName: "Authorizenet",
			CardCode:    true,
			TestMode:    false,
		},
	}
}

func BraintreePaypal() models.PaymentMethod {
	return models.PaymentMethod{
		ID:             "braintreepaypal",
		Method:         "paypal",
		Type:           models.PaymentTypeAPI,
		SupportedCards: []string{},
		Config:         models.PaymentMethodConfig{DisplayName: "Braintree PayPal"},
		ClientToken:    "foo",
	}
}

func AdyenMultiOption() models.PaymentMethod {
	return models.PaymentMethod{
		ID:             "adyen",
		Method:         models.MethodMultiOption,
		Type:           models.PaymentTypeHosted,
		SupportedCards: []string{},
		Config:         models.PaymentMethodConfig{DisplayName: "Adyen"},
	}
}

func OfflinePaymentMethod() models.PaymentMethod {
	return models.PaymentMethod{
		ID:             "cheque",
		Method:         "offline",
		Type:           models.PaymentTypeOffline,
		SupportedCards: []string{},
		Config:         models.PaymentMethodConfig{DisplayName: "Pay by cheque"},
	}
}

func PaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		PaymentMethod(),
		BraintreePaypal(),
		AdyenMultiOption(),
		OfflinePaymentMethod(),
	}
}

func PaymentMethodsMeta() *models.PaymentMethodsMeta {
	return &models.PaymentMethodsMeta{
		Request: &models.PaymentRequestMeta{
			DeviceSessionID: "a37230e9a8e4ea2d7765e2f3e19f7b1d",
			SessionHash:     "cfbbbac580a920b9f95cb3d6e3b1d44b",
		},
	}
}

// CreditCardPayment is a raw card payment for PaymentMethod()
func CreditCardPayment() models.Payment {
	return models.Payment{
		MethodID: "authorizenet",
		PaymentData: models.CreditCardInstrument{
			CCExpiry: models.CardExpiry{Month: "10", Year: "20"},
			CCName:   "BigCommerce",
			CCNumber: "4111111111111111",
			CCType:   "visa",
			CCCvv:    "123",
		},
	}
}

// VaultedPayment references the stored instrument InstrumentID
func VaultedPayment() models.Payment {
	return models.Payment{
		MethodID:    "authorizenet",
		PaymentData: models.VaultedInstrument{InstrumentID: InstrumentID, CCCvv: "123"},
	}
}

func Instruments() []models.Instrument {
	return []models.Instrument{
		{ID: InstrumentID, Provider: "braintree", IIN: "11111111", Last4: "4321", ExpiryMonth: "02", ExpiryYear: "2020", Brand: "test", TrustedShippingAddress: true, DefaultInstrument: true},
		{ID: "111", Provider: "authorizenet", IIN: "11222333", Last4: "4444", ExpiryMonth: "10", ExpiryYear: "2024", Brand: "test", TrustedShippingAddress: false},
	}
}

// InstrumentMeta carries a vault token that expires an hour after now
func InstrumentMeta() *models.InstrumentMeta {
	return &models.InstrumentMeta{
		VaultAccessToken:  VaultToken,
		VaultAccessExpiry: time.Now().Add(time.Hour).UnixMilli(),
	}
}

func Order() models.Order {
	cart := Cart()
	return models.Order{
		OrderID:              OrderID,
		CartID:               CartID,
		Currency:             cart.Currency,
		BaseAmount:           dec(200),
		DiscountAmount:       dec(10),
		ShippingCostTotal:    dec(15),
		HandlingCostTotal:    dec(8),
		TaxTotal:             dec(3),
		OrderAmount:          dec(190),
		OrderAmountAsInteger: 19000,
		Taxes:                []models.Tax{{Name: "Tax", Amount: dec(3)}},
		Coupons:              []models.Coupon{},
		LineItems:            cart.LineItems,
		CustomerID:           0,
		BillingAddress:       BillingAddress(),
		Status:               models.OrderStatusIncomplete,
		Payments: []models.OrderPayment{{
			ProviderID:  "authorizenet",
			Description: "credit-card",
			Amount:      dec(190),
			Detail:      models.PaymentDetail{Step: models.PaymentStepAcknowledge, Instructions: "%%Syntax error%%"},
		}},
	}
}

func OrderMeta() *models.OrderMeta {
	orderID := OrderID
	return &models.OrderMeta{
		OrderID:           &orderID,
		Token:             OrderToken,
		DeviceFingerprint: "a084205e-1b1f-487d-9087-e072d20747e5",
	}
}

func SubmittedOrder() models.SubmittedOrder {
	return models.SubmittedOrder{
		OrderID: OrderID,
		Status:  models.OrderStatusIncomplete,
		Payment: models.InternalOrderPayment{ID: "authorizenet", Status: "PAYMENT_STATUS_INITIALIZE"},
	}
}

func StoreConfig() models.StoreConfig {
	return models.StoreConfig{
		StoreProfile: models.StoreProfile{
			StoreHash:        "k1drp8k8",
			StoreID:          StoreID,
			StoreLanguage:    "en_US",
			StoreName:        "s1504098821",
			StorePhoneNumber: "",
			ShopPath:         "https://store-k1drp8k8.bcapp.dev",
		},
		Currency: models.StoreCurrency{Code: "USD", DecimalPlaces: 2},
		CheckoutSettings: models.CheckoutSettings{
			EnableOrderComments:   true,
			GuestCheckoutEnabled:  true,
			IsCardVaultingEnabled: true,
		},
		PaymentSettings: models.PaymentSettings{BigpayBaseURL: "https://bigpay.integration.zone"},
	}
}

func Countries() []models.Country {
	return []models.Country{
		{Code: "AU", Name: "Australia", HasPostalCodes: true, RequiresState: true, Subdivisions: []models.Region{{Code: "NSW", Name: "New South Wales"}}},
		{Code: "US", Name: "United States", HasPostalCodes: true, RequiresState: true, Subdivisions: []models.Region{{Code: "CA", Name: "California"}}},
		{Code: "JP", Name: "Japan", Subdivisions: []models.Region{}},
	}
}

// StoreState returns a session state with every slice loaded
func StoreState() state.StoreState {
	checkout := Checkout()
	cart := checkout.Cart
	customer := checkout.Customer
	billing := *checkout.BillingAddress
	config := StoreConfig()
	order := Order()

	return state.StoreState{
		BillingAddress:    state.BillingAddressState{Data: &billing},
		Cart:              state.CartState{Data: &cart},
		Checkout:          state.CheckoutState{Data: &checkout},
		Config:            state.ConfigState{Data: &config},
		Consignments:      state.ConsignmentState{Data: checkout.Consignments},
		Countries:         state.CountryState{Data: Countries()},
		Customer:          state.CustomerState{Data: &customer},
		Instruments:       state.InstrumentState{Data: Instruments(), Meta: InstrumentMeta()},
		Order:             state.OrderState{Data: &order, Meta: OrderMeta()},
		PaymentMethods:    state.PaymentMethodState{Data: PaymentMethods(), Meta: PaymentMethodsMeta()},
		ShippingCountries: state.ShippingCountryState{Data: Countries()},
	}
}
