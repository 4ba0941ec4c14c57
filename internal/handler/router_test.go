//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"wedding-rsvp/internal/domain/guest"
	"wedding-rsvp/internal/handler"
	"wedding-rsvp/internal/handler/api"
	"wedding-rsvp/internal/handler/middleware"
	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/jwt"
	"wedding-rsvp/internal/pkg/ratelimit"
	"wedding-rsvp/internal/pkg/rsvptoken"
	"wedding-rsvp/internal/usecase"
	"wedding-rsvp/internal/usecase/queries"
	"wedding-rsvp/tests/common/httptest"
	commandsmock "wedding-rsvp/tests/mock/commands"
	queriesmock "wedding-rsvp/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	engine       *gin.Engine
	clock        *clock.MockClock
	tokenGuard   *rsvptoken.Guard
	mockCtrl     *gomock.Controller
	guestQueries *queriesmock.MockGuestQueries
	rsvpCommands *commandsmock.MockRSVPCommands
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	s.clock = clock.NewMockClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))

	var err error
	s.tokenGuard, err = rsvptoken.NewGuard(cfg.Token.Secret, cfg.Token.TTL, s.clock)
	s.Require().NoError(err)
	jwtService, err := jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.JWTDuration, s.clock)
	s.Require().NoError(err)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), s.clock)

	s.mockCtrl = gomock.NewController(s.T())
	s.guestQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.rsvpCommands = commandsmock.NewMockRSVPCommands(s.mockCtrl)

	s.engine = gin.New()
	handler.NewRouter(
		s.engine,
		cfg,
		middleware.NewLogger(cfg.Log),
		s.tokenGuard,
		limiter,
		api.NewTokenHandler(s.tokenGuard),
		api.NewGuestHandler(s.guestQueries),
		api.NewRSVPHandler(s.rsvpCommands),
		api.NewAdminHandler(commandsmock.NewMockAdminAuthCommands(s.mockCtrl), queriesmock.NewMockResponseQueries(s.mockCtrl), cfg),
		middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService)),
	)
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) token() string {
	token, _, err := s.tokenGuard.Issue()
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/health", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertSecurityHeaders(s.T(), rec)
}

func (s *RouterTestSuite) TestGuardOrder() {
	body := map[string]any{"name": "John Smith"}

	s.Run("bad origin wins over a missing token", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodPost, "/api/guest-lookup", body,
			map[string]string{"Origin": "https://evil.example"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, middleware.MsgUnauthorizedOrigin)
	})

	s.Run("missing token after origin passes", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodPost, "/api/guest-lookup", body,
			map[string]string{"Origin": "https://rsvp.example.org"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, middleware.MsgMissingToken)
	})

	s.Run("rate limit is checked before the token", func() {
		// the origin rejection above never reached the limiter
		for i := 0; i < 9; i++ {
			rec := httptest.PerformRequest(s.T(), s.engine, http.MethodPost, "/api/guest-lookup", body, "")
			s.Equal(http.StatusForbidden, rec.Code)
		}
		rec := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodPost, "/api/guest-lookup", body,
			map[string]string{middleware.HeaderRSVPToken: s.token()})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, middleware.MsgRateLimited)
	})
}

func (s *RouterTestSuite) TestLookupThroughGuards() {
	s.guestQueries.EXPECT().LookupByName(gomock.Any(), "John Smith").
		Return(&queries.LookupResult{Kind: guest.ResultNoMatch}, nil).Times(1)

	rec := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodPost, "/api/guest-lookup",
		map[string]any{"name": "John Smith"},
		map[string]string{middleware.HeaderRSVPToken: s.token(), "Origin": "https://rsvp.example.org"})

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"guest":null}`, rec.Body.String())
}

func (s *RouterTestSuite) TestSubmitRejectsExpiredToken() {
	token := s.token()
	s.clock.Add(601 * time.Second)

	rec := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodPost, "/api/send-rsvp",
		map[string]any{"guest_id": 1}, map[string]string{middleware.HeaderRSVPToken: token})

	httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, middleware.MsgExpiredToken)
}

func (s *RouterTestSuite) TestMethodNotAllowed() {
	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/api/send-rsvp", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusMethodNotAllowed, "Method not allowed")
	httptest.AssertSecurityHeaders(s.T(), rec)
}

func (s *RouterTestSuite) TestAdminRequiresAuth() {
	rec := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/api/admin/responses", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}
