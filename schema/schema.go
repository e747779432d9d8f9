// Package schema holds the request shapes of the contacts API and the
// functions that validate them into [datastores] values.
//
// Required fields are pointers so that a missing field can be told apart
// from its zero value; slices use nil for "absent". Members sent as JSON null
// are remembered while decoding and rejected by the validation.
package schema

// PhoneNumber is the request shape of a [datastores.PhoneNumber].
type PhoneNumber struct {
	Type   *string `json:"type,omitempty"   doc:"one of Home, Work, Mobile, Other" example:"Mobile"`
	Label  *string `json:"label,omitempty"  doc:"free form label"`
	Number *string `json:"number,omitempty" doc:"optional + followed by 8 to 15 digits" example:"1234567890"`

	nulls nulls
}

// Address is the request shape of a [datastores.Address].
type Address struct {
	Type         *string `json:"type,omitempty"         doc:"one of Home, Work, Mobile, Other" example:"Home"`
	Label        *string `json:"label,omitempty"        doc:"free form label"`
	AddressLine1 *string `json:"addressLine1,omitempty" example:"123 Main St"`
	AddressLine2 *string `json:"addressLine2,omitempty" example:"Apt 4B"`
	Zipcode      *int    `json:"zipcode,omitempty"      doc:"positive integer" example:"12345"`
	State        *string `json:"state,omitempty"        example:"NY"`
	Country      *string `json:"country,omitempty"      example:"USA"`

	nulls nulls
}

// CreateContact is the body of a contact creation.
// Name and at least one phone number are required.
type CreateContact struct {
	Name         *string       `json:"name,omitempty"         doc:"non empty name" example:"John Doe"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty" doc:"at least one phone number"`
	Addresses    []Address     `json:"addresses,omitempty"`

	nulls nulls
}

// UpdateContact is the body of a partial contact update.
// Fields follow the [CreateContact] rules but any of them may be left out.
type UpdateContact CreateContact
