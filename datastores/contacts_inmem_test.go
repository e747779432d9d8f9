package datastores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func johnDoe() *Contact {
	return &Contact{
		Name:         "John Doe",
		PhoneNumbers: []PhoneNumber{{Type: Mobile, Number: "1234567890"}},
		Addresses: []Address{{
			Type:         Home,
			AddressLine1: "123 Main St",
			AddressLine2: "Apt 4B",
			Zipcode:      12345,
			State:        "NY",
			Country:      "USA",
		}},
	}
}

func TestContactsInmemCreateGet(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem()

	id, err := s.Create(ctx, johnDoe())
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	want := johnDoe()
	want.ID = id
	assert.Equal(t, want, got)
}

func TestContactsInmemIDsIncrease(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem(johnDoe())

	var last ContactID
	for range 5 {
		id, err := s.Create(ctx, johnDoe())
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}

	// deleting the newest contact must not free its id
	require.NoError(t, s.Delete(ctx, last))
	id, err := s.Create(ctx, johnDoe())
	require.NoError(t, err)
	assert.Equal(t, last+1, id)
}

func TestContactsInmemZeroValue(t *testing.T) {
	id, err := new(ContactsInmem).Create(context.Background(), johnDoe())
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestContactsInmemListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem()

	contacts, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)

	for _, name := range []string{"a", "b", "c"} {
		c := johnDoe()
		c.Name = name
		_, err := s.Create(ctx, c)
		require.NoError(t, err)
	}

	contacts, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, name, contacts[i].Name)
		assert.Equal(t, i+1, contacts[i].ID)
	}
}

func TestContactsInmemUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch", func(t *testing.T) {
		s := NewContactsInmem(johnDoe())
		before, err := s.Get(ctx, 1)
		require.NoError(t, err)

		after, err := s.Update(ctx, 1, &ContactPatch{})
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("shallow merge", func(t *testing.T) {
		s := NewContactsInmem(johnDoe())
		name := "Jane Doe"
		phones := []PhoneNumber{{Type: Work, Label: "desk", Number: "+4412345678"}}

		updated, err := s.Update(ctx, 1, &ContactPatch{Name: &name, PhoneNumbers: phones})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.ID)
		assert.Equal(t, name, updated.Name)
		assert.Equal(t, phones, updated.PhoneNumbers)
		assert.Equal(t, johnDoe().Addresses, updated.Addresses)

		stored, err := s.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("empty addresses replace", func(t *testing.T) {
		s := NewContactsInmem(johnDoe())
		updated, err := s.Update(ctx, 1, &ContactPatch{Addresses: []Address{}})
		require.NoError(t, err)
		assert.Empty(t, updated.Addresses)
	})

	t.Run("not found", func(t *testing.T) {
		s := NewContactsInmem(johnDoe())
		name := "Jane Doe"
		_, err := s.Update(ctx, 999, &ContactPatch{Name: &name})
		require.ErrorIs(t, err, ErrObjectNotFound)

		contacts, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "John Doe", contacts[0].Name)
	})
}

func TestContactsInmemDelete(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem(johnDoe(), johnDoe())

	require.NoError(t, s.Delete(ctx, 1))
	_, err := s.Get(ctx, 1)
	require.ErrorIs(t, err, ErrObjectNotFound)

	contacts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, 2, contacts[0].ID)

	require.ErrorIs(t, s.Delete(ctx, 1), ErrObjectNotFound)
	require.ErrorIs(t, s.Delete(ctx, 999), ErrObjectNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestContactsInmemIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem(johnDoe())

	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	got.Name = "mutated"
	got.PhoneNumbers[0].Number = "000"

	again, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", again.Name)
	assert.Equal(t, "1234567890", again.PhoneNumbers[0].Number)
}

func TestContactsInmemReset(t *testing.T) {
	ctx := context.Background()
	s := NewContactsInmem(johnDoe(), johnDoe())

	s.Reset()
	assert.Equal(t, 0, s.Len())

	id, err := s.Create(ctx, johnDoe())
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}
