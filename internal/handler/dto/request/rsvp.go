package request

import (
	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/domain/rsvp"
	"wedding-rsvp/internal/pkg/errs"
)

var ErrInvalidSubmission = errs.NewKind("invalid submission", errs.ErrInvalidInput)

// LookupRequest carries either a name to search or a guest id picked from
// the candidate list. A positive GuestID takes precedence.
type LookupRequest struct {
	Name    string `json:"name"`
	GuestID *int   `json:"guest_id"`
}

func (r *LookupRequest) ByID() (int, bool) {
	if r.GuestID == nil || *r.GuestID == 0 {
		return 0, false
	}
	return *r.GuestID, true
}

type SubmitRSVPRequest struct {
	GuestID                 int    `json:"guest_id"`
	AttendingPrimaryEvent   bool   `json:"attending_primary_event"`
	AttendingSecondaryEvent bool   `json:"attending_secondary_event"`
	PlusOneAttending        bool   `json:"plus_one_attending"`
	PlusOneName             string `json:"plus_one_name"`
}

// ToDomain checks the body before any guest lookup happens.
func (r *SubmitRSVPRequest) ToDomain() (int, rsvp.Attendance, error) {
	if r.GuestID <= 0 {
		return 0, rsvp.Attendance{}, ErrInvalidSubmission
	}

	plusOneName, err := guest.NewOptionalPersonName(r.PlusOneName)
	if err != nil {
		return 0, rsvp.Attendance{}, rsvp.ErrInvalidPlusOneName
	}

	return r.GuestID, rsvp.Attendance{
		PrimaryEvent:   r.AttendingPrimaryEvent,
		SecondaryEvent: r.AttendingSecondaryEvent,
		PlusOne:        r.PlusOneAttending,
		PlusOneName:    plusOneName,
	}, nil
}
