package repository

import (
	"context"
	"encoding/json"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/infra"
	"wedding-rsvp/internal/infra/converter"
	"wedding-rsvp/internal/pkg/fileutil"
)

// GuestRepository writes the guest dataset. Only the import tool uses it;
// the server treats the dataset as read-only.
type GuestRepository struct {
	path string
}

func NewGuestRepository(path string) *GuestRepository {
	return &GuestRepository{
		path: path,
	}
}

func (r *GuestRepository) Save(ctx context.Context, guests []*guest.Guest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(converter.GuestsToRecords(guests), "", "  ")
	if err != nil {
		return infra.WrapRepoErr("failed to encode guest data", err, infra.KindDecodeFailure)
	}
	if err := fileutil.WriteAtomic(r.path, append(data, '\n'), 0o644); err != nil {
		return infra.WrapRepoErr("failed to write guest data", err)
	}
	return nil
}
