package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/infra"
	"wedding-rsvp/internal/infra/converter"
)

// GuestReadStore reads the guest dataset file on every call so an updated
// file is picked up without a restart.
type GuestReadStore struct {
	path string
}

func NewGuestReadStore(path string) *GuestReadStore {
	return &GuestReadStore{
		path: path,
	}
}

func (s *GuestReadStore) LoadGuests(ctx context.Context) ([]*guest.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, infra.WrapRepoErr("guest data not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read guest data", err)
	}

	var records []converter.GuestRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to decode guest data", err, infra.KindDecodeFailure)
	}

	guests, err := converter.GuestsFromRecords(records)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid guest record", err, infra.KindDecodeFailure)
	}
	return guests, nil
}
