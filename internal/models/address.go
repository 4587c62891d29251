package models

// Address as exchanged with the storefront API
type Address struct {
	ID                  string        `json:"id,omitempty"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	Email               string        `json:"email,omitempty" validate:"omitempty,email"`
	Company             string        `json:"company"`
	Address1            string        `json:"address1"`
	Address2            string        `json:"address2"`
	City                string        `json:"city"`
	StateOrProvince     string        `json:"stateOrProvince"`
	StateOrProvinceCode string        `json:"stateOrProvinceCode"`
	Country             string        `json:"country"`
	CountryCode         string        `json:"countryCode" validate:"omitempty,len=2"`
	PostalCode          string        `json:"postalCode"`
	Phone               string        `json:"phone"`
	CustomFields        []CustomField `json:"customFields"`
}

type CustomField struct {
	FieldID    string `json:"fieldId"`
	FieldValue string `json:"fieldValue"`
}

// GuestCredentials identifies a guest shopper by email
type GuestCredentials struct {
	Email string `json:"email" validate:"required,email"`
}
