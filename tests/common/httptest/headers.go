//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertSecurityHeaders checks the headers every API response carries,
// error responses included.
func AssertSecurityHeaders(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{
		"X-Content-Type-Options": "nosniff",
		"Cache-Control":          "no-store",
	})
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "request id header missing")
}
