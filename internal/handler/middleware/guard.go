package middleware

import (
	"context"
	"net/http"
	"strconv"

	"wedding-rsvp/internal/handler/httperr"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/pkg/ratelimit"
	"wedding-rsvp/internal/pkg/rsvptoken"

	"github.com/gin-gonic/gin"
)

const (
	HeaderRSVPToken = "X-RSVP-Token"

	MsgMissingToken = "Missing security token"
	MsgInvalidToken = "Invalid token"
	MsgExpiredToken = "Token expired. Please refresh and try again."
	MsgRateLimited  = "Too many requests. Please wait a moment."
)

// Endpoint names double as rate-limit window keys.
const (
	EndpointToken      = "token"
	EndpointLookup     = "lookup"
	EndpointSubmit     = "submit"
	EndpointAdminLogin = "admin_login"
)

// TokenVerifier is satisfied by *rsvptoken.Guard.
type TokenVerifier interface {
	Validate(token string) error
}

// RequireRSVPToken checks the form token header. Every failure is a 403.
func RequireRSVPToken(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderRSVPToken)
		if token == "" {
			httperr.AbortWithError(c, http.StatusForbidden, nil, MsgMissingToken, nil)
			return
		}

		if err := verifier.Validate(token); err != nil {
			msg := MsgInvalidToken
			if errs.Is(err, rsvptoken.ErrExpiredToken) {
				msg = MsgExpiredToken
			}
			httperr.AbortWithError(c, http.StatusForbidden, err, msg, nil)
			return
		}

		c.Next()
	}
}

// RateLimiter is satisfied by *ratelimit.Limiter.
type RateLimiter interface {
	CheckAndRecord(ctx context.Context, clientKey, endpoint string, limit int) error
}

// RateLimit admits at most limit requests per client IP per window for endpoint.
func RateLimit(limiter RateLimiter, endpoint string, limit int) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(ratelimit.DefaultWindow.Seconds()))
	return func(c *gin.Context) {
		err := limiter.CheckAndRecord(c.Request.Context(), c.ClientIP(), endpoint, limit)
		switch {
		case err == nil:
			c.Next()
		case errs.Is(err, ratelimit.ErrRateLimited):
			c.Header("Retry-After", retryAfter)
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, MsgRateLimited, nil)
		default:
			httperr.Internal(c, err)
		}
	}
}

// SecurityHeaders marks every response as non-sniffable and uncacheable.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
