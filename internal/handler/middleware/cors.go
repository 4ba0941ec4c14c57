package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"wedding-rsvp/internal/handler/httperr"
	"wedding-rsvp/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const MsgUnauthorizedOrigin = "Unauthorized origin"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

// OriginGuard rejects cross-origin requests from outside the allow-list
// before any other guard runs. Requests without an Origin header pass.
func OriginGuard(cfg config.CORSConfig) gin.HandlerFunc {
	allowed := slices.Clone(cfg.AllowOrigins)
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" || slices.Contains(allowed, origin) || slices.Contains(allowed, "*") {
			c.Next()
			return
		}
		httperr.AbortWithError(c, http.StatusForbidden, nil, MsgUnauthorizedOrigin, nil)
	}
}
