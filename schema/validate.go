package schema

import (
	"regexp"
	"slices"
	"strings"

	"github.com/oaiiae/contact-book/datastores"
)

var phoneNumberPattern = regexp.MustCompile(`^\+?\d{8,15}$`)

// ValidateCreate checks in and converts it to a contact ready to be stored.
// The returned error is a [*ValidationError] when in is rejected.
func ValidateCreate(in *CreateContact) (*datastores.Contact, error) {
	is := newIssues()
	if in == nil {
		in = &CreateContact{}
	}

	contact := &datastores.Contact{}
	if name, ok := validateName(in.nulls.field(is, "name"), in.Name, true); ok {
		contact.Name = name
	}
	contact.PhoneNumbers = validatePhoneNumbers(in.nulls.field(is, "phoneNumbers"), in.PhoneNumbers, true)
	contact.Addresses = validateAddresses(in.nulls.field(is, "addresses"), in.Addresses)

	if err := is.err(); err != nil {
		return nil, err
	}
	return contact, nil
}

// ValidateUpdate checks in and converts it to a patch.
// Absent fields stay nil in the patch; an empty update is valid.
func ValidateUpdate(in *UpdateContact) (*datastores.ContactPatch, error) {
	is := newIssues()
	if in == nil {
		in = &UpdateContact{}
	}

	patch := &datastores.ContactPatch{}
	if name, ok := validateName(in.nulls.field(is, "name"), in.Name, false); ok {
		patch.Name = &name
	}
	patch.PhoneNumbers = validatePhoneNumbers(in.nulls.field(is, "phoneNumbers"), in.PhoneNumbers, false)
	patch.Addresses = validateAddresses(in.nulls.field(is, "addresses"), in.Addresses)

	if err := is.err(); err != nil {
		return nil, err
	}
	return patch, nil
}

func validateName(is issues, name *string, required bool) (string, bool) {
	switch {
	case name == nil:
		if required {
			is.add(nil, "required")
		}
		return "", false
	case *name == "":
		is.add(*name, "must contain at least 1 character")
		return "", false
	default:
		return *name, true
	}
}

func validatePhoneNumbers(is issues, in []PhoneNumber, required bool) []datastores.PhoneNumber {
	if in == nil {
		if required {
			is.add(nil, "required")
		}
		return nil
	}
	if len(in) == 0 {
		is.add(in, "must contain at least 1 phone number")
		return nil
	}

	out := make([]datastores.PhoneNumber, 0, len(in))
	for i := range in {
		is, n := is.index(i), in[i].nulls
		out = append(out, datastores.PhoneNumber{
			Type:   validateType(n.field(is, "type"), in[i].Type),
			Label:  optionalString(n.field(is, "label"), in[i].Label),
			Number: validateNumber(n.field(is, "number"), in[i].Number),
		})
	}
	return out
}

func validateNumber(is issues, number *string) string {
	switch {
	case number == nil:
		is.add(nil, "required")
	case !phoneNumberPattern.MatchString(*number):
		is.add(*number, "must match %s", phoneNumberPattern)
	}
	return deref(number)
}

func validateAddresses(is issues, in []Address) []datastores.Address {
	if in == nil {
		return nil
	}

	out := make([]datastores.Address, 0, len(in))
	for i := range in {
		is, n := is.index(i), in[i].nulls
		out = append(out, datastores.Address{
			Type:         validateType(n.field(is, "type"), in[i].Type),
			Label:        optionalString(n.field(is, "label"), in[i].Label),
			AddressLine1: requireString(n.field(is, "addressLine1"), in[i].AddressLine1),
			AddressLine2: requireString(n.field(is, "addressLine2"), in[i].AddressLine2),
			Zipcode:      validateZipcode(n.field(is, "zipcode"), in[i].Zipcode),
			State:        requireString(n.field(is, "state"), in[i].State),
			Country:      requireString(n.field(is, "country"), in[i].Country),
		})
	}
	return out
}

func validateType(is issues, typ *string) datastores.ContactDataType {
	if typ == nil {
		is.add(nil, "required")
		return ""
	}
	t := datastores.ContactDataType(*typ)
	if !slices.Contains(datastores.ContactDataTypes, t) {
		is.add(*typ, "must be one of %s", joinTypes())
	}
	return t
}

func validateZipcode(is issues, zipcode *int) int {
	switch {
	case zipcode == nil:
		is.add(nil, "required")
		return 0
	case *zipcode <= 0:
		is.add(*zipcode, "must be a positive integer")
	}
	return *zipcode
}

// optionalString accepts any string; is only carries a null rejection.
func optionalString(_ issues, s *string) string {
	return deref(s)
}

func requireString(is issues, s *string) string {
	if s == nil {
		is.add(nil, "required")
	}
	return deref(s)
}

func joinTypes() string {
	types := make([]string, 0, len(datastores.ContactDataTypes))
	for _, t := range datastores.ContactDataTypes {
		types = append(types, string(t))
	}
	return strings.Join(types, ", ")
}

func deref[T any](p *T) T {
	if p == nil {
		return *new(T)
	}
	return *p
}
