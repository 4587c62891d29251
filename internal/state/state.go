package state

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
)

// Reducer folds a signal into the store state. Reducers must not mutate
// the data referenced by the state they receive.
type Reducer func(StoreState, signal.Signal) StoreState

// StoreState is the normalized state tree of one checkout session
type StoreState struct {
	BillingAddress    BillingAddressState
	Cart              CartState
	Checkout          CheckoutState
	Config            ConfigState
	Consignments      ConsignmentState
	Countries         CountryState
	Customer          CustomerState
	Instruments       InstrumentState
	Order             OrderState
	Payment           PaymentState
	PaymentMethods    PaymentMethodState
	ShippingCountries ShippingCountryState
}

type BillingAddressState struct {
	Data     *models.Address
	Errors   BillingAddressErrors
	Statuses BillingAddressStatuses
}

type BillingAddressErrors struct {
	LoadError            error
	UpdateError          error
	ContinueAsGuestError error
}

type BillingAddressStatuses struct {
	IsLoading           bool
	IsUpdating          bool
	IsContinuingAsGuest bool
}

type CartState struct {
	Data     *models.Cart
	Errors   CartErrors
	Statuses CartStatuses
}

type CartErrors struct {
	LoadError error
}

type CartStatuses struct {
	IsLoading bool
}

type CheckoutState struct {
	Data     *models.Checkout
	Errors   CheckoutErrors
	Statuses CheckoutStatuses
}

type CheckoutErrors struct {
	LoadError error
}

type CheckoutStatuses struct {
	IsLoading bool
}

type ConfigState struct {
	Data     *models.StoreConfig
	Errors   ConfigErrors
	Statuses ConfigStatuses
}

type ConfigErrors struct {
	LoadError error
}

type ConfigStatuses struct {
	IsLoading bool
}

type ConsignmentState struct {
	Data     []models.Consignment
	Errors   ConsignmentErrors
	Statuses ConsignmentStatuses
}

type ConsignmentErrors struct {
	LoadError                 error
	LoadShippingOptionsError  error
	CreateError               error
	UpdateError               error
	UpdateShippingOptionError error
}

type ConsignmentStatuses struct {
	IsLoading                bool
	IsLoadingShippingOptions bool
	IsCreating               bool
	IsUpdating               bool
	IsUpdatingShippingOption bool
}

type CountryState struct {
	Data     []models.Country
	Errors   CountryErrors
	Statuses CountryStatuses
}

type CountryErrors struct {
	LoadError error
}

type CountryStatuses struct {
	IsLoading bool
}

type CustomerState struct {
	Data *models.Customer
}

type InstrumentState struct {
	Data     []models.Instrument
	Meta     *models.InstrumentMeta
	Errors   InstrumentErrors
	Statuses InstrumentStatuses
}

type InstrumentErrors struct {
	LoadError   error
	DeleteError error
	// FailedInstrument is the id whose deletion failed
	FailedInstrument string
}

type InstrumentStatuses struct {
	IsLoading          bool
	IsDeleting         bool
	DeletingInstrument string
}

type OrderState struct {
	Data     *models.Order
	Meta     *models.OrderMeta
	Errors   OrderErrors
	Statuses OrderStatuses
}

type OrderErrors struct {
	LoadError     error
	SubmitError   error
	FinalizeError error
}

type OrderStatuses struct {
	IsLoading    bool
	IsSubmitting bool
	IsFinalizing bool
}

type PaymentState struct {
	Data     *models.PaymentResponse
	Errors   PaymentErrors
	Statuses PaymentStatuses
}

type PaymentErrors struct {
	SubmitError     error
	InitializeError error
}

type PaymentStatuses struct {
	IsSubmitting   bool
	IsInitializing bool
}

type PaymentMethodState struct {
	Data     []models.PaymentMethod
	Meta     *models.PaymentMethodsMeta
	Errors   PaymentMethodErrors
	Statuses PaymentMethodStatuses
}

type PaymentMethodErrors struct {
	LoadError       error
	LoadMethodError error
	// FailedMethod is the id of the method whose load failed
	FailedMethod string
}

type PaymentMethodStatuses struct {
	IsLoading       bool
	IsLoadingMethod bool
	LoadingMethod   string
}

type ShippingCountryState struct {
	Data     []models.Country
	Errors   ShippingCountryErrors
	Statuses ShippingCountryStatuses
}

type ShippingCountryErrors struct {
	LoadError error
}

type ShippingCountryStatuses struct {
	IsLoading bool
}
