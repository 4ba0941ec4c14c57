// Package rsvptoken issues and validates the short-lived form tokens that gate
// the public RSVP endpoints.
//
// Wire format: base64(payload) + "." + hex(HMAC-SHA256(secret, base64(payload)))
// where payload is the JSON object {"exp": <unix>, "iat": <unix>}.
// Validity is a pure function of the secret and the clock; nothing is stored.
package rsvptoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/errs"
)

const DefaultTTL = 600 * time.Second

var (
	ErrMalformedToken = errs.NewKind("malformed token", errs.ErrUnauthorized)
	ErrBadSignature   = errs.NewKind("bad token signature", errs.ErrUnauthorized)
	ErrExpiredToken   = errs.NewKind("token expired", errs.ErrUnauthorized)
	ErrEmptySecret    = errs.New("token secret must not be empty")
)

type payload struct {
	Exp *int64 `json:"exp"`
	Iat int64  `json:"iat,omitempty"`
}

type Guard struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewGuard(secret string, ttl time.Duration, clk clock.Clock) (*Guard, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Guard{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clk,
	}, nil
}

func (g *Guard) TTL() time.Duration {
	return g.ttl
}

// Issue returns a signed token and the instant it stops validating.
func (g *Guard) Issue() (string, time.Time, error) {
	now := g.clock.Now()
	expiresAt := now.Add(g.ttl).Truncate(time.Second)
	exp := expiresAt.Unix()

	raw, err := json.Marshal(payload{Exp: &exp, Iat: now.Unix()})
	if err != nil {
		return "", time.Time{}, errs.Wrap(err, "failed to encode token payload")
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	return encoded + "." + g.sign(encoded), expiresAt, nil
}

func (g *Guard) Validate(token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return ErrMalformedToken
	}

	raw, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return ErrMalformedToken
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return ErrMalformedToken
	}
	if p.Exp == nil {
		return ErrMalformedToken
	}

	expected := g.sign(parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return ErrBadSignature
	}

	if *p.Exp < g.clock.Now().Unix() {
		return ErrExpiredToken
	}
	return nil
}

func (g *Guard) sign(encodedPayload string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(encodedPayload))
	return hex.EncodeToString(mac.Sum(nil))
}
