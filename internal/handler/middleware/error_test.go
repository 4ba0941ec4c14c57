//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"wedding-rsvp/internal/handler/middleware"
	"wedding-rsvp/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestNoMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(middleware.NoMethod())
	engine.NoRoute(middleware.NoRoute())
	engine.POST("/api/send-rsvp", ok)

	t.Run("wrong verb on a known path", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/send-rsvp", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusMethodNotAllowed, "Method not allowed")
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/unknown", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
