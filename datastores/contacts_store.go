package datastores

import (
	"context"
	"errors"
)

// ContactDataType tags phone numbers and addresses.
type ContactDataType string

const (
	Home   ContactDataType = "Home"
	Work   ContactDataType = "Work"
	Mobile ContactDataType = "Mobile"
	Other  ContactDataType = "Other"
)

// ContactDataTypes lists every valid [ContactDataType].
var ContactDataTypes = []ContactDataType{Home, Work, Mobile, Other} //nolint: gochecknoglobals,nolintlint

type (
	ContactID   = int
	PhoneNumber struct {
		Type   ContactDataType
		Label  string
		Number string
	}
	Address struct {
		Type         ContactDataType
		Label        string
		AddressLine1 string
		AddressLine2 string
		Zipcode      int
		State        string
		Country      string
	}
	Contact struct {
		ID           ContactID
		Name         string
		PhoneNumbers []PhoneNumber
		Addresses    []Address
	}
)

// ContactPatch holds the fields of a partial update.
// A nil field is left untouched; a non-nil one replaces the stored field entirely.
type ContactPatch struct {
	Name         *string
	PhoneNumbers []PhoneNumber
	Addresses    []Address
}

type ContactsStore interface {
	Create(context.Context, *Contact) (ContactID, error)
	List(context.Context) ([]*Contact, error)
	Get(context.Context, ContactID) (*Contact, error)
	Update(context.Context, ContactID, *ContactPatch) (*Contact, error)
	Delete(context.Context, ContactID) error
}

var ErrObjectNotFound = errors.New("store: object not found")

// clone returns a copy of c that shares no slices with it.
func (c *Contact) clone() *Contact {
	cp := *c
	cp.PhoneNumbers = cloneSlice(c.PhoneNumbers)
	cp.Addresses = cloneSlice(c.Addresses)
	return &cp
}

// merge returns a copy of c with the non-nil fields of p applied over it.
func (c *Contact) merge(p *ContactPatch) *Contact {
	merged := c.clone()
	if p == nil {
		return merged
	}
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.PhoneNumbers != nil {
		merged.PhoneNumbers = cloneSlice(p.PhoneNumbers)
	}
	if p.Addresses != nil {
		merged.Addresses = cloneSlice(p.Addresses)
	}
	return merged
}

// cloneSlice is [slices.Clone] but keeps the nil/empty distinction.
func cloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	return append(make(S, 0, len(s)), s...)
}
