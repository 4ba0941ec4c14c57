package shared

import (
	"context"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/domain/rsvp"
)

// GuestReadStore loads the guest dataset. Implementations reload per call.
type GuestReadStore interface {
	LoadGuests(ctx context.Context) ([]*guest.Guest, error)
}

// ResponseStore is the response list and its write lock.
type ResponseStore interface {
	// LoadAll reads the list without taking the write lock.
	LoadAll(ctx context.Context) ([]*rsvp.Response, error)
	// Within holds the exclusive lock for the whole read-modify-write in fn.
	// Anything passed to tx.Save is persisted only when fn returns nil.
	Within(ctx context.Context, fn func(ctx context.Context, tx ResponseTx) error) error
}

type ResponseTx interface {
	Responses() []*rsvp.Response
	Save(list []*rsvp.Response)
}
