package converter

import (
	"strings"

	"wedding-rsvp/internal/domain/guest"
)

// GuestRecord is one entry of the guest dataset file.
type GuestRecord struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	NameLower          string `json:"name_lower"`
	FirstNameMetaphone string `json:"first_name_metaphone,omitempty"`
	LastNameMetaphone  string `json:"last_name_metaphone,omitempty"`
	PlusOneAllowed     bool   `json:"plus_one_allowed"`
	PreWeddingInvited  bool   `json:"pre_wedding_invited"`
	Headcount          int    `json:"headcount"`
}

func GuestFromRecord(r GuestRecord) (*guest.Guest, error) {
	return guest.NewGuest(guest.Params{
		ID:                r.ID,
		Name:              r.Name,
		NameLower:         r.NameLower,
		PreWeddingInvited: r.PreWeddingInvited,
		PlusOneAllowed:    r.PlusOneAllowed,
		Headcount:         r.Headcount,
	})
}

// GuestToRecord also fills the phonetic keys of the first and last name
// so the file stays readable by other tooling.
func GuestToRecord(g *guest.Guest) GuestRecord {
	rec := GuestRecord{
		ID:                g.ID(),
		Name:              g.Name(),
		NameLower:         g.NameLower(),
		PlusOneAllowed:    g.PlusOneAllowed(),
		PreWeddingInvited: g.PreWeddingInvited(),
		Headcount:         g.Headcount(),
	}

	tokens := strings.Fields(g.NameLower())
	if len(tokens) > 0 {
		rec.FirstNameMetaphone = guest.Metaphone(tokens[0])
	}
	if len(tokens) > 1 {
		rec.LastNameMetaphone = guest.Metaphone(tokens[len(tokens)-1])
	}
	return rec
}

func GuestsFromRecords(records []GuestRecord) ([]*guest.Guest, error) {
	guests := make([]*guest.Guest, 0, len(records))
	for i, rec := range records {
		g, err := GuestFromRecord(rec)
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		guests = append(guests, g)
	}
	return guests, nil
}

func GuestsToRecords(guests []*guest.Guest) []GuestRecord {
	records := make([]GuestRecord, len(guests))
	for i, g := range guests {
		records[i] = GuestToRecord(g)
	}
	return records
}
