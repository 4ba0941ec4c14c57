//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestService(t *testing.T) {
	clk := clock.NewMockClock(now)
	service, err := jwt.NewService("test-jwt-secret", time.Hour, clk)
	require.NoError(t, err)

	token, expiresAt, err := service.GenerateToken(jwt.AdminSubject)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	t.Run("round trip", func(t *testing.T) {
		clk.Set(now.Add(59 * time.Minute))
		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.AdminSubject, claims.Subject)
		assert.Equal(t, jwt.Issuer, claims.Issuer)
	})

	t.Run("expired", func(t *testing.T) {
		clk.Set(now.Add(61 * time.Minute))
		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("rejections", func(t *testing.T) {
		clk.Set(now)

		otherSecret, err := jwt.NewService("another-secret", time.Hour, clk)
		require.NoError(t, err)
		foreign, _, err := otherSecret.GenerateToken(jwt.AdminSubject)
		require.NoError(t, err)

		wrongIssuer, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   jwt.AdminSubject,
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString([]byte("test-jwt-secret"))
		require.NoError(t, err)

		noExpiry, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
			Issuer:  jwt.Issuer,
			Subject: jwt.AdminSubject,
		}).SignedString([]byte("test-jwt-secret"))
		require.NoError(t, err)

		unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{
			Issuer:    jwt.Issuer,
			Subject:   jwt.AdminSubject,
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		for name, tok := range map[string]string{
			"garbage":      "not.a.jwt",
			"other secret": foreign,
			"wrong issuer": wrongIssuer,
			"no expiry":    noExpiry,
			"alg none":     unsigned,
		} {
			t.Run(name, func(t *testing.T) {
				_, err := service.ValidateToken(tok)
				assert.ErrorIs(t, err, jwt.ErrInvalidToken)
			})
		}
	})
}

func TestNewService_EmptySecret(t *testing.T) {
	_, err := jwt.NewService("", time.Hour, clock.NewRealClock())
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
