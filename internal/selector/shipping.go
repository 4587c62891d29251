package selector

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/state"
)

type ConsignmentSelector struct {
	consignments state.ConsignmentState
}

func (s ConsignmentSelector) GetConsignments() []models.Consignment {
	return s.consignments.Data
}

// GetConsignmentByID returns the consignment with the given id, or nil
func (s ConsignmentSelector) GetConsignmentByID(id string) *models.Consignment {
	for i := range s.consignments.Data {
		if s.consignments.Data[i].ID == id {
			return copyOf(&s.consignments.Data[i])
		}
	}
	return nil
}

func (s ConsignmentSelector) GetLoadError() error {
	return s.consignments.Errors.LoadError
}

func (s ConsignmentSelector) GetLoadShippingOptionsError() error {
	return s.consignments.Errors.LoadShippingOptionsError
}

func (s ConsignmentSelector) GetCreateError() error {
	return s.consignments.Errors.CreateError
}

func (s ConsignmentSelector) GetUpdateError() error {
	return s.consignments.Errors.UpdateError
}

func (s ConsignmentSelector) GetUpdateShippingOptionError() error {
	return s.consignments.Errors.UpdateShippingOptionError
}

func (s ConsignmentSelector) IsLoading() bool {
	return s.consignments.Statuses.IsLoading
}

func (s ConsignmentSelector) IsLoadingShippingOptions() bool {
	return s.consignments.Statuses.IsLoadingShippingOptions
}

func (s ConsignmentSelector) IsCreating() bool {
	return s.consignments.Statuses.IsCreating
}

func (s ConsignmentSelector) IsUpdating() bool {
	return s.consignments.Statuses.IsUpdating
}

func (s ConsignmentSelector) IsUpdatingShippingOption() bool {
	return s.consignments.Statuses.IsUpdatingShippingOption
}

// ShippingAddressSelector reads the address of the first consignment
type ShippingAddressSelector struct {
	consignments state.ConsignmentState
}

// GetShippingAddress returns the shipping address keyed by its consignment id
func (s ShippingAddressSelector) GetShippingAddress() *models.InternalAddress {
	if len(s.consignments.Data) == 0 {
		return nil
	}
	consignment := s.consignments.Data[0]
	address := models.MapToInternalAddress(consignment.ShippingAddress, consignment.ID)
	return &address
}

type ShippingOptionSelector struct {
	consignments state.ConsignmentState
}

// GetShippingOptions returns the available options per consignment id
func (s ShippingOptionSelector) GetShippingOptions() models.InternalShippingOptionList {
	if s.consignments.Data == nil {
		return nil
	}

	list := make(models.InternalShippingOptionList, len(s.consignments.Data))
	for _, consignment := range s.consignments.Data {
		selectedID := ""
		if consignment.SelectedShippingOption != nil {
			selectedID = consignment.SelectedShippingOption.ID
		}

		options := make([]models.InternalShippingOption, 0, len(consignment.AvailableShippingOptions))
		for _, option := range consignment.AvailableShippingOptions {
			options = append(options, models.MapToInternalShippingOption(option, option.ID == selectedID))
		}
		list[consignment.ID] = options
	}
	return list
}

// GetSelectedShippingOption returns the option selected on the first consignment
func (s ShippingOptionSelector) GetSelectedShippingOption() *models.InternalShippingOption {
	if len(s.consignments.Data) == 0 || s.consignments.Data[0].SelectedShippingOption == nil {
		return nil
	}
	option := models.MapToInternalShippingOption(*s.consignments.Data[0].SelectedShippingOption, true)
	return &option
}
