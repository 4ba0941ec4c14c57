package rsvp

import (
	"time"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlusOneName = errs.NewKind("invalid plus-one name", errs.ErrInvalidInput)
	ErrAlreadySubmitted   = errs.NewKind("rsvp already submitted", errs.ErrConflict)
	ErrInvalidGuestID     = errs.NewKind("response guest id must be positive", errs.ErrInvalidInput)
)

// Attendance is what the guest chose on the form.
type Attendance struct {
	PrimaryEvent   bool
	SecondaryEvent bool
	PlusOne        bool
	PlusOneName    string
}

// Response is a guest's one-time attendance confirmation. Append-only.
type Response struct {
	id                      uuid.UUID
	guestID                 int
	guestName               string
	attendingPrimaryEvent   bool
	attendingSecondaryEvent bool
	plusOneAttending        bool
	plusOneName             string
	submittedAt             time.Time
}

// NewResponse records a's choices for g. Options the guest was not offered are
// forced off, and the plus-one name is kept only when the plus-one attends.
func NewResponse(g *guest.Guest, a Attendance, now time.Time) (*Response, error) {
	plusOneName, err := guest.NewOptionalPersonName(a.PlusOneName)
	if err != nil {
		return nil, ErrInvalidPlusOneName
	}

	plusOne := a.PlusOne && g.PlusOneAllowed()
	if !plusOne {
		plusOneName = ""
	}

	return &Response{
		id:                      uuid.New(),
		guestID:                 g.ID(),
		guestName:               g.Name(),
		attendingPrimaryEvent:   a.PrimaryEvent,
		attendingSecondaryEvent: a.SecondaryEvent && g.PreWeddingInvited(),
		plusOneAttending:        plusOne,
		plusOneName:             plusOneName,
		submittedAt:             now,
	}, nil
}

type RestoreParams struct {
	ID                      uuid.UUID
	GuestID                 int
	GuestName               string
	AttendingPrimaryEvent   bool
	AttendingSecondaryEvent bool
	PlusOneAttending        bool
	PlusOneName             string
	SubmittedAt             time.Time
}

// Restore rebuilds a persisted response without re-applying form rules.
func Restore(p RestoreParams) (*Response, error) {
	if p.GuestID <= 0 {
		return nil, ErrInvalidGuestID
	}
	return &Response{
		id:                      p.ID,
		guestID:                 p.GuestID,
		guestName:               p.GuestName,
		attendingPrimaryEvent:   p.AttendingPrimaryEvent,
		attendingSecondaryEvent: p.AttendingSecondaryEvent,
		plusOneAttending:        p.PlusOneAttending,
		plusOneName:             p.PlusOneName,
		submittedAt:             p.SubmittedAt,
	}, nil
}

func (r *Response) ID() uuid.UUID                 { return r.id }
func (r *Response) GuestID() int                  { return r.guestID }
func (r *Response) GuestName() string             { return r.guestName }
func (r *Response) AttendingPrimaryEvent() bool   { return r.attendingPrimaryEvent }
func (r *Response) AttendingSecondaryEvent() bool { return r.attendingSecondaryEvent }
func (r *Response) PlusOneAttending() bool        { return r.plusOneAttending }
func (r *Response) PlusOneName() string           { return r.plusOneName }
func (r *Response) SubmittedAt() time.Time        { return r.submittedAt }

// Append adds r to list unless its guest already responded.
func Append(list []*Response, r *Response) ([]*Response, error) {
	for _, existing := range list {
		if existing.guestID == r.guestID {
			return list, ErrAlreadySubmitted
		}
	}
	return append(list, r), nil
}

func SubmittedIDs(list []*Response) guest.SubmittedSet {
	set := make(guest.SubmittedSet, len(list))
	for _, r := range list {
		set[r.guestID] = struct{}{}
	}
	return set
}
