//go:build unit || e2e

package builder

import (
	"time"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/domain/rsvp"
	reqdto "wedding-rsvp/internal/handler/dto/request"
)

type RSVPBuilder struct {
	GuestID                 int
	AttendingPrimaryEvent   bool
	AttendingSecondaryEvent bool
	PlusOneAttending        bool
	PlusOneName             string
	SubmittedAt             time.Time
}

func NewRSVPBuilder() *RSVPBuilder {
	return &RSVPBuilder{
		GuestID:                 1,
		AttendingPrimaryEvent:   true,
		AttendingSecondaryEvent: true,
		PlusOneAttending:        true,
		PlusOneName:             "Marie Keyrouz",
		SubmittedAt:             time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RSVPBuilder) With(mutate func(*RSVPBuilder)) *RSVPBuilder {
	mutate(b)
	return b
}

func (b *RSVPBuilder) BuildDTO() reqdto.SubmitRSVPRequest {
	return reqdto.SubmitRSVPRequest{
		GuestID:                 b.GuestID,
		AttendingPrimaryEvent:   b.AttendingPrimaryEvent,
		AttendingSecondaryEvent: b.AttendingSecondaryEvent,
		PlusOneAttending:        b.PlusOneAttending,
		PlusOneName:             b.PlusOneName,
	}
}

func (b *RSVPBuilder) Attendance() rsvp.Attendance {
	return rsvp.Attendance{
		PrimaryEvent:   b.AttendingPrimaryEvent,
		SecondaryEvent: b.AttendingSecondaryEvent,
		PlusOne:        b.PlusOneAttending,
		PlusOneName:    b.PlusOneName,
	}
}

func (b *RSVPBuilder) BuildDomain(g *guest.Guest) (*rsvp.Response, error) {
	return rsvp.NewResponse(g, b.Attendance(), b.SubmittedAt)
}
