package shared

import (
	"context"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/infra"
	"wedding-rsvp/internal/pkg/errs"
)

var ErrGuestDataUnavailable = errs.NewKind("guest data unavailable", errs.ErrServerFault)

// LoadGuests reports a missing dataset as a server fault, never as an unknown guest.
func LoadGuests(ctx context.Context, store GuestReadStore) ([]*guest.Guest, error) {
	guests, err := store.LoadGuests(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestDataUnavailable
		}
		return nil, errs.Wrap(err, "failed to load guests")
	}
	return guests, nil
}
