package response

import (
	"time"

	"wedding-rsvp/internal/usecase/queries"
)

type AdminLoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type ResponsesListResponse struct {
	Responses []queries.ResponseView `json:"responses"`
	Count     int                    `json:"count"`
}

type SummaryResponse = queries.SummaryView
