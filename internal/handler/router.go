package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wedding-rsvp/internal/handler/api"
	"wedding-rsvp/internal/handler/middleware"
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/ratelimit"
	"wedding-rsvp/internal/pkg/rsvptoken"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	tokenGuard *rsvptoken.Guard,
	limiter *ratelimit.Limiter,
	tokenHandler *api.TokenHandler,
	guestHandler *api.GuestHandler,
	rsvpHandler *api.RSVPHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg.RateLimit, tokenGuard, limiter, tokenHandler, guestHandler, rsvpHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	engine.HandleMethodNotAllowed = true

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	// Origin is checked before CORS headers are written and before any per-route guard
	engine.Use(middleware.OriginGuard(cfg.CORS))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))

	engine.NoMethod(middleware.NoMethod())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(
	engine *gin.Engine,
	limits config.RateLimitConfig,
	tokenGuard *rsvptoken.Guard,
	limiter *ratelimit.Limiter,
	tokenHandler *api.TokenHandler,
	guestHandler *api.GuestHandler,
	rsvpHandler *api.RSVPHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireToken := middleware.RequireRSVPToken(tokenGuard)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{
				Method: http.MethodGet, Path: "/token", Handler: tokenHandler.Issue,
				Mw: []gin.HandlerFunc{middleware.RateLimit(limiter, middleware.EndpointToken, limits.TokenRPM)},
			},
			{
				Method: http.MethodPost, Path: "/guest-lookup", Handler: guestHandler.Lookup,
				Mw: []gin.HandlerFunc{middleware.RateLimit(limiter, middleware.EndpointLookup, limits.LookupRPM), requireToken},
			},
			{
				Method: http.MethodPost, Path: "/send-rsvp", Handler: rsvpHandler.Submit,
				Mw: []gin.HandlerFunc{middleware.RateLimit(limiter, middleware.EndpointSubmit, limits.SubmitRPM), requireToken},
			},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{
					Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login,
					Mw: []gin.HandlerFunc{middleware.RateLimit(limiter, middleware.EndpointAdminLogin, limits.AdminLoginRPM)},
				},
				{Method: http.MethodPost, Path: "/logout", Handler: adminHandler.Logout},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/responses", Handler: adminHandler.Responses},
				{Method: http.MethodGet, Path: "/summary", Handler: adminHandler.Summary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// Route middleware runs in the order listed, after the group's middleware.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
