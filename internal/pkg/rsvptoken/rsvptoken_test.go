//go:build unit

package rsvptoken_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/pkg/rsvptoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-token-secret"

var issuedAt = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newGuard(t *testing.T) (*rsvptoken.Guard, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(issuedAt)
	g, err := rsvptoken.NewGuard(secret, 600*time.Second, clk)
	require.NoError(t, err)
	return g, clk
}

func TestGuard_IssueAndValidate(t *testing.T) {
	g, clk := newGuard(t)

	token, expiresAt, err := g.Issue()
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(600*time.Second), expiresAt)

	t.Run("wire format is base64 payload dot hex signature", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 2)
		assert.Len(t, parts[1], 64)

		raw, err := base64.StdEncoding.DecodeString(parts[0])
		require.NoError(t, err)
		var payload map[string]int64
		require.NoError(t, json.Unmarshal(raw, &payload))
		assert.Equal(t, expiresAt.Unix(), payload["exp"])
		assert.Equal(t, issuedAt.Unix(), payload["iat"])
	})

	t.Run("valid immediately and through the last second", func(t *testing.T) {
		clk.Set(issuedAt)
		assert.NoError(t, g.Validate(token))
		clk.Set(issuedAt.Add(600 * time.Second))
		assert.NoError(t, g.Validate(token))
	})

	t.Run("expired one second later", func(t *testing.T) {
		clk.Set(issuedAt.Add(601 * time.Second))
		err := g.Validate(token)
		assert.ErrorIs(t, err, rsvptoken.ErrExpiredToken)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("deterministic for the same clock", func(t *testing.T) {
		clk.Set(issuedAt)
		again, _, err := g.Issue()
		require.NoError(t, err)
		assert.Equal(t, token, again)
	})
}

func TestGuard_Rejects(t *testing.T) {
	g, _ := newGuard(t)
	token, _, err := g.Issue()
	require.NoError(t, err)
	parts := strings.Split(token, ".")

	encode := func(v string) string { return base64.StdEncoding.EncodeToString([]byte(v)) }
	extended := encode(`{"exp":4102444800,"iat":1780315200}`)

	other, err := rsvptoken.NewGuard("another-secret", 0, clock.NewMockClock(issuedAt))
	require.NoError(t, err)
	forged, _, err := other.Issue()
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: rsvptoken.ErrMalformedToken},
		{name: "no separator", token: "abc", want: rsvptoken.ErrMalformedToken},
		{name: "three parts", token: token + ".x", want: rsvptoken.ErrMalformedToken},
		{name: "payload not base64", token: "!!!." + parts[1], want: rsvptoken.ErrMalformedToken},
		{name: "payload not json", token: encode("nope") + "." + parts[1], want: rsvptoken.ErrMalformedToken},
		{name: "payload without exp", token: encode(`{"iat":1}`) + "." + parts[1], want: rsvptoken.ErrMalformedToken},
		{name: "payload swapped", token: extended + "." + parts[1], want: rsvptoken.ErrBadSignature},
		{name: "signature truncated", token: parts[0] + "." + parts[1][:10], want: rsvptoken.ErrBadSignature},
		{name: "signed with another secret", token: forged, want: rsvptoken.ErrBadSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Validate(tt.token)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		})
	}
}

func TestNewGuard(t *testing.T) {
	_, err := rsvptoken.NewGuard("", time.Minute, clock.NewRealClock())
	assert.ErrorIs(t, err, rsvptoken.ErrEmptySecret)

	g, err := rsvptoken.NewGuard(secret, 0, clock.NewRealClock())
	require.NoError(t, err)
	assert.Equal(t, rsvptoken.DefaultTTL, g.TTL())
}
