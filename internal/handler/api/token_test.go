//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"wedding-rsvp/internal/handler/api"
	resdto "wedding-rsvp/internal/handler/dto/response"
	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/rsvptoken"
	"wedding-rsvp/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenHandler_Issue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	guard, err := rsvptoken.NewGuard("test-token-secret", rsvptoken.DefaultTTL, clk)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/api/token", api.NewTokenHandler(guard).Issue)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/token", nil, "")

	var response resdto.TokenResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
	assert.Equal(t, now.Add(600*time.Second).Unix(), response.ExpiresAt)
	assert.NoError(t, guard.Validate(response.Token))
}
