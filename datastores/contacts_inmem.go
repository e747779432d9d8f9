package datastores

import (
	"context"
	"slices"
	"sync"
)

const firstContactID ContactID = 1

// ContactsInmem implements [ContactsStore].
// Contacts are kept in insertion order and ids come from a monotonic counter.
type ContactsInmem struct {
	mu       sync.Mutex
	nextID   ContactID
	contacts []*Contact
}

var _ ContactsStore = (*ContactsInmem)(nil)

// NewContactsInmem returns a store seeded with cs, which get ids assigned in order.
func NewContactsInmem(cs ...*Contact) *ContactsInmem {
	s := &ContactsInmem{nextID: firstContactID}
	for _, c := range cs {
		s.insert(c)
	}
	return s
}

func (s *ContactsInmem) insert(c *Contact) ContactID {
	c.ID = s.nextID
	s.nextID++
	s.contacts = append(s.contacts, c.clone())
	return c.ID
}

func (s *ContactsInmem) Create(_ context.Context, c *Contact) (ContactID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nextID < firstContactID {
		s.nextID = firstContactID
	}
	return s.insert(c), nil
}

func (s *ContactsInmem) List(_ context.Context) ([]*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	contacts := make([]*Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		contacts = append(contacts, c.clone())
	}
	return contacts, nil
}

func (s *ContactsInmem) Get(_ context.Context, id ContactID) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.indexOf(id)
	if index < 0 {
		return nil, ErrObjectNotFound
	}
	return s.contacts[index].clone(), nil
}

func (s *ContactsInmem) Update(_ context.Context, id ContactID, p *ContactPatch) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.indexOf(id)
	if index < 0 {
		return nil, ErrObjectNotFound
	}
	updated := s.contacts[index].merge(p)
	s.contacts[index] = updated
	return updated.clone(), nil
}

func (s *ContactsInmem) Delete(_ context.Context, id ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.indexOf(id)
	if index < 0 {
		return ErrObjectNotFound
	}
	s.contacts = slices.Delete(s.contacts, index, index+1)
	return nil
}

// Len returns the number of stored contacts.
func (s *ContactsInmem) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// Reset drops every contact and restarts ids from 1. Meant for test isolation.
func (s *ContactsInmem) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = nil
	s.nextID = firstContactID
}

func (s *ContactsInmem) indexOf(id ContactID) int {
	return slices.IndexFunc(s.contacts, func(c *Contact) bool { return c.ID == id })
}
