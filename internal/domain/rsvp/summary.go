package rsvp

import "wedding-rsvp/internal/domain/guest"

type Summary struct {
	GuestsTotal        int
	Responded          int
	Pending            int
	AttendingPrimary   int
	AttendingSecondary int
	PlusOnes           int
	// guests attending the primary event plus their plus-ones
	ExpectedHeadcount int
}

// Summarize counts only responses whose guest is still in the dataset.
func Summarize(guests []*guest.Guest, responses []*Response) Summary {
	known := make(map[int]struct{}, len(guests))
	for _, g := range guests {
		known[g.ID()] = struct{}{}
	}

	s := Summary{GuestsTotal: len(guests)}
	for _, r := range responses {
		if _, ok := known[r.guestID]; !ok {
			continue
		}
		s.Responded++
		if r.attendingSecondaryEvent {
			s.AttendingSecondary++
		}
		if !r.attendingPrimaryEvent {
			continue
		}
		s.AttendingPrimary++
		s.ExpectedHeadcount++
		if r.plusOneAttending {
			s.PlusOnes++
			s.ExpectedHeadcount++
		}
	}
	s.Pending = s.GuestsTotal - s.Responded
	return s
}
