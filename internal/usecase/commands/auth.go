package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "wedding-rsvp/internal/handler/dto/request"
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/pkg/jwt"
	"wedding-rsvp/internal/pkg/password"
)

var (
	ErrAdminDisabled      = errs.New("admin access disabled")
	ErrInvalidCredentials = errs.NewKind("invalid credentials", errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commands
type AdminAuthCommands interface {
	Login(ctx context.Context, req reqdto.AdminLoginRequest) (*LoginResult, error)
}

type adminAuthCommandsImpl struct {
	cfg        config.AdminConfig
	jwtService *jwt.Service
}

// jwtService is nil when admin access is disabled.
func NewAdminAuthCommands(cfg config.AdminConfig, jwtService *jwt.Service) AdminAuthCommands {
	return &adminAuthCommandsImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

func (a *adminAuthCommandsImpl) Login(ctx context.Context, req reqdto.AdminLoginRequest) (*LoginResult, error) {
	if !a.cfg.Enabled() || a.jwtService == nil {
		return nil, ErrAdminDisabled
	}

	if err := password.ComparePassword(a.cfg.PasswordHash, req.Password); err != nil {
		slog.WarnContext(ctx, "admin login rejected", "error", err.Error())
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateToken(jwt.AdminSubject)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
