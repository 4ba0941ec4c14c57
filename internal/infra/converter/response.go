package converter

import (
	"strconv"
	"time"

	"wedding-rsvp/internal/domain/rsvp"

	"github.com/google/uuid"
)

// ResponseRecord is one entry of the response list file. Legacy field names
// are still read so older lists keep loading; they are never written.
type ResponseRecord struct {
	ID                      uuid.UUID `json:"id"`
	GuestID                 int       `json:"guest_id"`
	GuestName               string    `json:"guest_name"`
	AttendingPrimaryEvent   bool      `json:"attending_primary_event"`
	AttendingSecondaryEvent bool      `json:"attending_secondary_event"`
	PlusOneAttending        bool      `json:"plus_one_attending"`
	PlusOneName             string    `json:"plus_one_name"`
	SubmittedAt             time.Time `json:"submitted_at"`

	LegacyAttendingWedding    *bool `json:"attending_wedding,omitempty"`
	LegacyAttendingPreWedding *bool `json:"attending_pre_wedding,omitempty"`
	LegacyPlusOneComing       *bool `json:"plus_one_coming,omitempty"`
}

var legacyResponseNamespace = uuid.MustParse("6f1c0f8e-3b8a-4f7e-9a51-2d4c8e7b9a10")

func ResponseFromRecord(r ResponseRecord) (*rsvp.Response, error) {
	id := r.ID
	if id == uuid.Nil {
		id = uuid.NewSHA1(legacyResponseNamespace, []byte(strconv.Itoa(r.GuestID)))
	}

	return rsvp.Restore(rsvp.RestoreParams{
		ID:                      id,
		GuestID:                 r.GuestID,
		GuestName:               r.GuestName,
		AttendingPrimaryEvent:   r.AttendingPrimaryEvent || deref(r.LegacyAttendingWedding),
		AttendingSecondaryEvent: r.AttendingSecondaryEvent || deref(r.LegacyAttendingPreWedding),
		PlusOneAttending:        r.PlusOneAttending || deref(r.LegacyPlusOneComing),
		PlusOneName:             r.PlusOneName,
		SubmittedAt:             r.SubmittedAt,
	})
}

func ResponseToRecord(r *rsvp.Response) ResponseRecord {
	return ResponseRecord{
		ID:                      r.ID(),
		GuestID:                 r.GuestID(),
		GuestName:               r.GuestName(),
		AttendingPrimaryEvent:   r.AttendingPrimaryEvent(),
		AttendingSecondaryEvent: r.AttendingSecondaryEvent(),
		PlusOneAttending:        r.PlusOneAttending(),
		PlusOneName:             r.PlusOneName(),
		SubmittedAt:             r.SubmittedAt(),
	}
}

func ResponsesFromRecords(records []ResponseRecord) ([]*rsvp.Response, error) {
	list := make([]*rsvp.Response, 0, len(records))
	for i, rec := range records {
		r, err := ResponseFromRecord(rec)
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		list = append(list, r)
	}
	return list, nil
}

func ResponsesToRecords(list []*rsvp.Response) []ResponseRecord {
	records := make([]ResponseRecord, len(list))
	for i, r := range list {
		records[i] = ResponseToRecord(r)
	}
	return records
}

func deref(b *bool) bool {
	return b != nil && *b
}
