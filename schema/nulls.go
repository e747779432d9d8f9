package schema

import (
	"bytes"
	"encoding/json"
)

// nulls records the members of a JSON object that were sent as null.
// Such members decode to nil, like absent ones, but are rejected.
type nulls map[string]bool

// decodeNulls unmarshals b into v and returns the members of b set to null.
func decodeNulls(b []byte, v any) (nulls, error) {
	if err := json.Unmarshal(b, v); err != nil {
		return nil, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return nil, err
	}

	var n nulls
	for name, raw := range members {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			if n == nil {
				n = make(nulls)
			}
			n[name] = true
		}
	}
	return n, nil
}

// field returns the issues of the named member.
// A member sent as null gets a single issue and its other checks are dropped.
func (n nulls) field(is issues, name string) issues {
	is = is.field(name)
	if n[name] {
		is.add(nil, "must not be null")
		is.muted = true
	}
	return is
}

func (c *CreateContact) UnmarshalJSON(b []byte) error {
	type plain CreateContact
	var err error
	c.nulls, err = decodeNulls(b, (*plain)(c))
	return err
}

func (c *UpdateContact) UnmarshalJSON(b []byte) error {
	type plain UpdateContact
	var err error
	c.nulls, err = decodeNulls(b, (*plain)(c))
	return err
}

func (p *PhoneNumber) UnmarshalJSON(b []byte) error {
	type plain PhoneNumber
	var err error
	p.nulls, err = decodeNulls(b, (*plain)(p))
	return err
}

func (a *Address) UnmarshalJSON(b []byte) error {
	type plain Address
	var err error
	a.nulls, err = decodeNulls(b, (*plain)(a))
	return err
}
