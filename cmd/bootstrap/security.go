package bootstrap

import (
	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/ratelimit"
	"wedding-rsvp/internal/pkg/rsvptoken"

	"go.uber.org/fx"
)

var SecurityModule = fx.Module("security",
	fx.Provide(
		clock.NewRealClock,
		NewTokenGuard,
		ratelimit.NewLimiter,
	),
)

func NewTokenGuard(cfg config.Config, clk clock.Clock) (*rsvptoken.Guard, error) {
	return rsvptoken.NewGuard(cfg.Token.Secret, cfg.Token.TTL, clk)
}
