package signal

// Checkout signals
const (
	LoadCheckoutRequested Type = "LOAD_CHECKOUT_REQUESTED"
	LoadCheckoutSucceeded Type = "LOAD_CHECKOUT_SUCCEEDED"
	LoadCheckoutFailed    Type = "LOAD_CHECKOUT_FAILED"
)

// Billing address signals
const (
	UpdateBillingAddressRequested Type = "UPDATE_BILLING_ADDRESS_REQUESTED"
	UpdateBillingAddressSucceeded Type = "UPDATE_BILLING_ADDRESS_SUCCEEDED"
	UpdateBillingAddressFailed    Type = "UPDATE_BILLING_ADDRESS_FAILED"

	ContinueAsGuestRequested Type = "CONTINUE_AS_GUEST_REQUESTED"
	ContinueAsGuestSucceeded Type = "CONTINUE_AS_GUEST_SUCCEEDED"
	ContinueAsGuestFailed    Type = "CONTINUE_AS_GUEST_FAILED"
)

// Consignment signals
const (
	CreateConsignmentsRequested Type = "CREATE_CONSIGNMENTS_REQUESTED"
	CreateConsignmentsSucceeded Type = "CREATE_CONSIGNMENTS_SUCCEEDED"
	CreateConsignmentsFailed    Type = "CREATE_CONSIGNMENTS_FAILED"

	UpdateConsignmentRequested Type = "UPDATE_CONSIGNMENT_REQUESTED"
	UpdateConsignmentSucceeded Type = "UPDATE_CONSIGNMENT_SUCCEEDED"
	UpdateConsignmentFailed    Type = "UPDATE_CONSIGNMENT_FAILED"

	UpdateShippingOptionRequested Type = "UPDATE_SHIPPING_OPTION_REQUESTED"
	UpdateShippingOptionSucceeded Type = "UPDATE_SHIPPING_OPTION_SUCCEEDED"
	UpdateShippingOptionFailed    Type = "UPDATE_SHIPPING_OPTION_FAILED"

	LoadShippingOptionsRequested Type = "LOAD_SHIPPING_OPTIONS_REQUESTED"
	LoadShippingOptionsSucceeded Type = "LOAD_SHIPPING_OPTIONS_SUCCEEDED"
	LoadShippingOptionsFailed    Type = "LOAD_SHIPPING_OPTIONS_FAILED"
)

// Order signals
const (
	LoadOrderRequested Type = "LOAD_ORDER_REQUESTED"
	LoadOrderSucceeded Type = "LOAD_ORDER_SUCCEEDED"
	LoadOrderFailed    Type = "LOAD_ORDER_FAILED"

	SubmitOrderRequested Type = "SUBMIT_ORDER_REQUESTED"
	SubmitOrderSucceeded Type = "SUBMIT_ORDER_SUCCEEDED"
	SubmitOrderFailed    Type = "SUBMIT_ORDER_FAILED"

	FinalizeOrderRequested Type = "FINALIZE_ORDER_REQUESTED"
	FinalizeOrderSucceeded Type = "FINALIZE_ORDER_SUCCEEDED"
	FinalizeOrderFailed    Type = "FINALIZE_ORDER_FAILED"
)

// Payment signals
const (
	SubmitPaymentRequested Type = "SUBMIT_PAYMENT_REQUESTED"
	SubmitPaymentSucceeded Type = "SUBMIT_PAYMENT_SUCCEEDED"
	SubmitPaymentFailed    Type = "SUBMIT_PAYMENT_FAILED"

	InitializeOffsitePaymentRequested Type = "INITIALIZE_OFFSITE_PAYMENT_REQUESTED"
	InitializeOffsitePaymentSucceeded Type = "INITIALIZE_OFFSITE_PAYMENT_SUCCEEDED"
	InitializeOffsitePaymentFailed    Type = "INITIALIZE_OFFSITE_PAYMENT_FAILED"
)

// Payment method signals
const (
	LoadPaymentMethodsRequested Type = "LOAD_PAYMENT_METHODS_REQUESTED"
	LoadPaymentMethodsSucceeded Type = "LOAD_PAYMENT_METHODS_SUCCEEDED"
	LoadPaymentMethodsFailed    Type = "LOAD_PAYMENT_METHODS_FAILED"

	LoadPaymentMethodRequested Type = "LOAD_PAYMENT_METHOD_REQUESTED"
	LoadPaymentMethodSucceeded Type = "LOAD_PAYMENT_METHOD_SUCCEEDED"
	LoadPaymentMethodFailed    Type = "LOAD_PAYMENT_METHOD_FAILED"
)

// Instrument signals
const (
	LoadInstrumentsRequested Type = "LOAD_INSTRUMENTS_REQUESTED"
	LoadInstrumentsSucceeded Type = "LOAD_INSTRUMENTS_SUCCEEDED"
	LoadInstrumentsFailed    Type = "LOAD_INSTRUMENTS_FAILED"

	DeleteInstrumentRequested Type = "DELETE_INSTRUMENT_REQUESTED"
	DeleteInstrumentSucceeded Type = "DELETE_INSTRUMENT_SUCCEEDED"
	DeleteInstrumentFailed    Type = "DELETE_INSTRUMENT_FAILED"
)

// Config and geography signals
const (
	LoadConfigRequested Type = "LOAD_CONFIG_REQUESTED"
	LoadConfigSucceeded Type = "LOAD_CONFIG_SUCCEEDED"
	LoadConfigFailed    Type = "LOAD_CONFIG_FAILED"

	LoadCountriesRequested Type = "LOAD_COUNTRIES_REQUESTED"
	LoadCountriesSucceeded Type = "LOAD_COUNTRIES_SUCCEEDED"
	LoadCountriesFailed    Type = "LOAD_COUNTRIES_FAILED"

	LoadShippingCountriesRequested Type = "LOAD_SHIPPING_COUNTRIES_REQUESTED"
	LoadShippingCountriesSucceeded Type = "LOAD_SHIPPING_COUNTRIES_SUCCEEDED"
	LoadShippingCountriesFailed    Type = "LOAD_SHIPPING_COUNTRIES_FAILED"
)
