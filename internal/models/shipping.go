package models

import "github.com/shopspring/decimal"

// Consignment groups a shipping address with the line items shipped to it
type Consignment struct {
	ID                       string           `json:"id"`
	ShippingAddress          Address          `json:"shippingAddress"`
	HandlingCost             decimal.Decimal  `json:"handlingCost"`
	ShippingCost             decimal.Decimal  `json:"shippingCost"`
	AvailableShippingOptions []ShippingOption `json:"availableShippingOptions,omitempty"`
	SelectedShippingOption   *ShippingOption  `json:"selectedShippingOption,omitempty"`
	LineItemIDs              []ItemID         `json:"lineItemIds"`
}

type ShippingOption struct {
	ID                    string          `json:"id"`
	Type                  string          `json:"type"`
	Description           string          `json:"description"`
	ImageURL              string          `json:"imageUrl"`
	Cost                  decimal.Decimal `json:"cost"`
	TransitTime           string          `json:"transitTime"`
	IsRecommended         bool            `json:"isRecommended"`
	AdditionalDescription string          `json:"additionalDescription,omitempty"`
}

type ConsignmentLineItem struct {
	ItemID   ItemID `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// ConsignmentCreateRequestBody is one entry of a create-consignments request
type ConsignmentCreateRequestBody struct {
	ShippingAddress Address               `json:"shippingAddress"`
	LineItems       []ConsignmentLineItem `json:"lineItems"`
}

// ConsignmentUpdateRequestBody updates a single consignment
type ConsignmentUpdateRequestBody struct {
	ID               string                `json:"id"`
	ShippingAddress  *Address              `json:"shippingAddress,omitempty"`
	LineItems        []ConsignmentLineItem `json:"lineItems,omitempty"`
	ShippingOptionID string                `json:"shippingOptionId,omitempty"`
}
