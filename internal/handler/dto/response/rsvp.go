package response

import (
	"wedding-rsvp/internal/usecase/queries"
)

// TokenResponse carries a form token; ExpiresAt is unix seconds.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// GuestResponse is both the exact-match answer and, with a nil Guest, the
// "no match" answer.
type GuestResponse struct {
	Guest *queries.GuestView `json:"guest"`
}

type AlreadySubmittedResponse struct {
	AlreadySubmitted bool   `json:"already_submitted"`
	GuestName        string `json:"guest_name"`
}

type CandidatesResponse struct {
	Candidates []queries.CandidateView `json:"candidates"`
}

type SubmitResponse struct {
	Success bool `json:"success"`
}
