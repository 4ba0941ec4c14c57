//go:build unit || e2e

// Package fake holds in-memory stand-ins for the file-backed stores.
package fake

import (
	"context"
	"sync"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/domain/rsvp"
	"wedding-rsvp/internal/usecase/shared"
)

type GuestStore struct {
	Guests []*guest.Guest
	Err    error
}

func NewGuestStore(guests ...*guest.Guest) *GuestStore {
	return &GuestStore{Guests: guests}
}

func (s *GuestStore) LoadGuests(context.Context) ([]*guest.Guest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Guests, nil
}

// ResponseStore commits only when fn succeeds, like the file store.
type ResponseStore struct {
	mu        sync.Mutex
	responses []*rsvp.Response

	LoadErr   error
	WithinErr error
}

func NewResponseStore(responses ...*rsvp.Response) *ResponseStore {
	return &ResponseStore{responses: responses}
}

func (s *ResponseStore) LoadAll(context.Context) ([]*rsvp.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]*rsvp.Response(nil), s.responses...), nil
}

func (s *ResponseStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.ResponseTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WithinErr != nil {
		return s.WithinErr
	}

	tx := &responseTx{current: append([]*rsvp.Response(nil), s.responses...)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if tx.dirty {
		s.responses = tx.next
	}
	return nil
}

func (s *ResponseStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.responses)
}

type responseTx struct {
	current []*rsvp.Response
	next    []*rsvp.Response
	dirty   bool
}

func (t *responseTx) Responses() []*rsvp.Response {
	return append([]*rsvp.Response(nil), t.current...)
}

func (t *responseTx) Save(list []*rsvp.Response) {
	t.next = list
	t.dirty = true
}
