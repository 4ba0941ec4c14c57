package bootstrap

import (
	"log/slog"

	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/jwt"
	"wedding-rsvp/internal/pkg/password"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService returns nil when the admin surface is not configured.
func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	if !cfg.Admin.Enabled() {
		slog.Info("admin endpoints disabled", "reason", "ADMIN_PASSWORD_HASH or JWT_SECRET not set")
		return nil, nil
	}
	if err := password.CheckHash(cfg.Admin.PasswordHash); err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.JWTDuration, clk)
}
