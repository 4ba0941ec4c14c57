//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/handler/api"
	resdto "wedding-rsvp/internal/handler/dto/response"
	"wedding-rsvp/internal/usecase/queries"
	"wedding-rsvp/tests/common/builder"
	"wedding-rsvp/tests/common/httptest"
	queriesmock "wedding-rsvp/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const lookupURL = "/api/guest-lookup"

type GuestHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockGuestQueries
	handler     *api.GuestHandler
}

func (s *GuestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.handler = api.NewGuestHandler(s.mockQueries)

	s.router.POST(lookupURL, s.handler.Lookup)
}

func (s *GuestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestHandlerTestSuite))
}

func (s *GuestHandlerTestSuite) TestLookupByName() {
	view := builder.NewGuestBuilder().BuildView()

	s.Run("success: exact match returns the guest", func() {
		s.mockQueries.EXPECT().LookupByName(gomock.Any(), "john smith").
			Return(&queries.LookupResult{Kind: guest.ResultExactMatch, Guest: view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"name": "john smith"}, "")

		var response resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Guest)
		s.Equal(*view, *response.Guest)
	})

	s.Run("success: already submitted exposes only the name", func() {
		s.mockQueries.EXPECT().LookupByName(gomock.Any(), "John Smith").
			Return(&queries.LookupResult{Kind: guest.ResultAlreadySubmitted, Guest: view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"name": "John Smith"}, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"already_submitted":true,"guest_name":"John Smith"}`, rec.Body.String())
	})

	s.Run("success: ambiguous search lists candidates without scores", func() {
		s.mockQueries.EXPECT().LookupByName(gomock.Any(), "George").
			Return(&queries.LookupResult{
				Kind: guest.ResultCandidates,
				Candidates: []queries.CandidateView{
					{ID: 3, Name: "George Smith", AlreadySubmitted: false, Score: 115},
					{ID: 4, Name: "George Brown", AlreadySubmitted: true, Score: 115},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"name": "George"}, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"candidates":[
			{"id":3,"name":"George Smith","already_submitted":false},
			{"id":4,"name":"George Brown","already_submitted":true}
		]}`, rec.Body.String())
	})

	s.Run("success: no match returns a null guest", func() {
		s.mockQueries.EXPECT().LookupByName(gomock.Any(), "Nobody").
			Return(&queries.LookupResult{Kind: guest.ResultNoMatch}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"name": "Nobody"}, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"guest":null}`, rec.Body.String())
	})

	s.Run("success: guest_id 0 falls back to the name", func() {
		s.mockQueries.EXPECT().LookupByName(gomock.Any(), "Nobody").
			Return(&queries.LookupResult{Kind: guest.ResultNoMatch}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"name": "Nobody", "guest_id": 0}, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *GuestHandlerTestSuite) TestLookupByID() {
	view := builder.NewGuestBuilder().WithID(7).BuildView()

	s.Run("success: guest_id takes precedence over the name", func() {
		s.mockQueries.EXPECT().LookupByID(gomock.Any(), 7).
			Return(&queries.LookupResult{Kind: guest.ResultExactMatch, Guest: view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"name": "ignored", "guest_id": 7}, "")

		var response resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Guest)
		s.Equal(7, response.Guest.ID)
	})

	s.Run("success: unknown id returns a null guest", func() {
		s.mockQueries.EXPECT().LookupByID(gomock.Any(), 999).
			Return(&queries.LookupResult{Kind: guest.ResultNoMatch}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"guest_id": 999}, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"guest":null}`, rec.Body.String())
	})
}

func (s *GuestHandlerTestSuite) TestLookupErrors() {
	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryErr       error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid name", queryErr: guest.ErrInvalidSearchName, expectedStatus: http.StatusBadRequest, expectedMsg: api.MsgInvalidName},
			{name: "dataset unavailable", queryErr: errors.New("open guests.json: no such file"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().LookupByName(gomock.Any(), "J0hn").
					Return(nil, tc.queryErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"name": "J0hn"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: malformed body is a 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, `{"name":`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, api.MsgInvalidName)
	})

	s.Run("error: wrong field type is a 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, lookupURL, map[string]any{"guest_id": "seven"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, api.MsgInvalidName)
	})
}
