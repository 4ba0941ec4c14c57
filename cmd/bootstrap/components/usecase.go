package components

import (
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/jwt"
	"wedding-rsvp/internal/usecase"
	"wedding-rsvp/internal/usecase/commands"
	"wedding-rsvp/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRSVPCommands,
		func(cfg config.Config, jwtService *jwt.Service) commands.AdminAuthCommands {
			return commands.NewAdminAuthCommands(cfg.Admin, jwtService)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGuestQueries,
		queries.NewResponseQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
