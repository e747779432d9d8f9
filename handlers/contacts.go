package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	ds "github.com/oaiiae/contact-book/datastores"
	"github.com/oaiiae/contact-book/schema"
)

// MessageContactNotFound answers every request on an unknown contact id.
const MessageContactNotFound = "Contact not found"

type Contacts struct {
	Store        ds.ContactsStore
	ErrorHandler func(context.Context, error)
}

type PhoneNumberModel struct {
	Type   ds.ContactDataType `json:"type"            enum:"Home,Work,Mobile,Other" example:"Mobile"`
	Label  string             `json:"label,omitempty"`
	Number string             `json:"number"          example:"1234567890"`
}

type AddressModel struct {
	Type         ds.ContactDataType `json:"type"            enum:"Home,Work,Mobile,Other" example:"Home"`
	Label        string             `json:"label,omitempty"`
	AddressLine1 string             `json:"addressLine1"    example:"123 Main St"`
	AddressLine2 string             `json:"addressLine2"    example:"Apt 4B"`
	Zipcode      int                `json:"zipcode"         example:"12345"`
	State        string             `json:"state"           example:"NY"`
	Country      string             `json:"country"         example:"USA"`
}

type ContactModel struct {
	ID ds.ContactID `json:"id" readOnly:"true" example:"1"`

	Name         string             `json:"name"                example:"John Doe"`
	PhoneNumbers []PhoneNumberModel `json:"phoneNumbers"`
	Addresses    []AddressModel     `json:"addresses,omitempty"`
}

func newContactModel(c *ds.Contact) ContactModel {
	m := ContactModel{
		ID:           c.ID,
		Name:         c.Name,
		PhoneNumbers: make([]PhoneNumberModel, 0, len(c.PhoneNumbers)),
	}
	for _, p := range c.PhoneNumbers {
		m.PhoneNumbers = append(m.PhoneNumbers, PhoneNumberModel(p))
	}
	if c.Addresses != nil {
		m.Addresses = make([]AddressModel, 0, len(c.Addresses))
		for _, a := range c.Addresses {
			m.Addresses = append(m.Addresses, AddressModel(a))
		}
	}
	return m
}

// parseID reads a contact id from a path segment.
// Anything that is not a positive integer cannot name a stored contact.
func parseID(s string) (ds.ContactID, bool) {
	id, err := strconv.Atoi(s)
	return id, err == nil && id > 0
}

func (h *Contacts) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/contacts",
		handlerWithErrorHandler(h.list, h.ErrorHandler),
		opSummary("List contacts"),
		opErrors(http.StatusInternalServerError),
	)
}

type ContactsListOutput struct {
	Body []ContactModel
}

func (h *Contacts) list(ctx context.Context, _ *struct{}) (*ContactsListOutput, error) {
	contacts, err := h.Store.List(ctx)
	if err != nil {
		return nil, err
	}

	body := make([]ContactModel, 0, len(contacts))
	for _, contact := range contacts {
		body = append(body, newContactModel(contact))
	}

	return &ContactsListOutput{Body: body}, nil
}

func (h *Contacts) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/contacts/{id}",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opSummary("Get a contact"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

type ContactOutput struct {
	Body ContactModel
}

func (h *Contacts) get(ctx context.Context, input *struct {
	ID string `path:"id" example:"1" doc:"ID of the contact to get"`
}) (*ContactOutput, error) {
	id, ok := parseID(input.ID)
	if !ok {
		return nil, huma.Error404NotFound(MessageContactNotFound)
	}

	contact, err := h.Store.Get(ctx, id)
	switch {
	case err == nil:
		return &ContactOutput{Body: newContactModel(contact)}, nil

	case errors.Is(err, ds.ErrObjectNotFound):
		return nil, huma.Error404NotFound(MessageContactNotFound, err)

	default:
		return nil, err
	}
}

func (h *Contacts) RegisterPost(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "/contacts",
		handlerWithErrorHandler(h.post, h.ErrorHandler),
		opSummary("Create a contact"),
		opStatus(http.StatusCreated),
		opErrors(http.StatusBadRequest, http.StatusInternalServerError),
	)
}

func (h *Contacts) post(ctx context.Context, input *struct {
	Body schema.CreateContact
}) (*ContactOutput, error) {
	contact, err := schema.ValidateCreate(&input.Body)
	if err != nil {
		return nil, validationError(err)
	}

	if _, err := h.Store.Create(ctx, contact); err != nil {
		return nil, err
	}

	return &ContactOutput{Body: newContactModel(contact)}, nil
}

func (h *Contacts) RegisterPut(api huma.API) { // called by [huma.AutoRegister]
	huma.Put(api, "/contacts/{id}",
		handlerWithErrorHandler(h.put, h.ErrorHandler),
		opSummary("Update a contact"),
		opErrors(http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Contacts) put(ctx context.Context, input *struct {
	ID   string               `path:"id" example:"1" doc:"ID of the contact to update"`
	Body *schema.UpdateContact `required:"false"`
}) (*ContactOutput, error) {
	patch, err := schema.ValidateUpdate(input.Body)
	if err != nil {
		return nil, validationError(err)
	}

	id, ok := parseID(input.ID)
	if !ok {
		return nil, huma.Error404NotFound(MessageContactNotFound)
	}

	contact, err := h.Store.Update(ctx, id, patch)
	switch {
	case err == nil:
		return &ContactOutput{Body: newContactModel(contact)}, nil

	case errors.Is(err, ds.ErrObjectNotFound):
		return nil, huma.Error404NotFound(MessageContactNotFound, err)

	default:
		return nil, err
	}
}

func (h *Contacts) RegisterDel(api huma.API) { // called by [huma.AutoRegister]
	huma.Delete(api, "/contacts/{id}",
		handlerWithErrorHandler(h.del, h.ErrorHandler),
		opSummary("Delete a contact"),
		opErrors(http.StatusNotFound, http.StatusInternalServerError),
	)
}

func (h *Contacts) del(ctx context.Context, input *struct {
	ID string `path:"id" example:"1" doc:"ID of the contact to delete"`
}) (*struct{}, error) {
	id, ok := parseID(input.ID)
	if !ok {
		return nil, huma.Error404NotFound(MessageContactNotFound)
	}

	err := h.Store.Delete(ctx, id)
	switch {
	case err == nil:
		return nil, nil //nolint: nilnil // no content

	case errors.Is(err, ds.ErrObjectNotFound):
		return nil, huma.Error404NotFound(MessageContactNotFound, err)

	default:
		return nil, err
	}
}

// validationError turns a [schema.ValidationError] into a 400 response.
func validationError(err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return huma.Error400BadRequest(MessageValidationFailed, verr.Errors()...)
	}
	return huma.Error400BadRequest(MessageValidationFailed, err)
}
