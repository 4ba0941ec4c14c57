package components

import (
	"wedding-rsvp/internal/handler"
	"wedding-rsvp/internal/handler/api"
	"wedding-rsvp/internal/handler/middleware"
	"wedding-rsvp/internal/pkg/rsvptoken"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(g *rsvptoken.Guard) *api.TokenHandler { return api.NewTokenHandler(g) },
		api.NewGuestHandler,
		api.NewRSVPHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
