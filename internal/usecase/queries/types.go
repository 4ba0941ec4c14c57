package queries

import (
	"time"

	"wedding-rsvp/internal/domain/guest"

	"github.com/google/uuid"
)

// GuestView represents a guest as shown to the form
type GuestView struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	NameLower         string `json:"name_lower"`
	PreWeddingInvited bool   `json:"pre_wedding_invited"`
	PlusOneAllowed    bool   `json:"plus_one_allowed"`
	Headcount         int    `json:"headcount"`
}

type CandidateView struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	AlreadySubmitted bool   `json:"already_submitted"`
	Score            int    `json:"-"`
}

// LookupResult carries Guest for exact and already-submitted matches and
// Candidates for an ambiguous search.
type LookupResult struct {
	Kind       guest.ResultKind
	Guest      *GuestView
	Candidates []CandidateView
}

type ResponseView struct {
	ID                      uuid.UUID `json:"id"`
	GuestID                 int       `json:"guest_id"`
	GuestName               string    `json:"guest_name"`
	AttendingPrimaryEvent   bool      `json:"attending_primary_event"`
	AttendingSecondaryEvent bool      `json:"attending_secondary_event"`
	PlusOneAttending        bool      `json:"plus_one_attending"`
	PlusOneName             string    `json:"plus_one_name"`
	SubmittedAt             time.Time `json:"submitted_at"`
}

type SummaryView struct {
	GuestsTotal        int `json:"guests_total"`
	Responded          int `json:"responded"`
	Pending            int `json:"pending"`
	AttendingPrimary   int `json:"attending_primary"`
	AttendingSecondary int `json:"attending_secondary"`
	PlusOnes           int `json:"plus_ones"`
	ExpectedHeadcount  int `json:"expected_headcount"`
}
