package cookie

import (
	"net/http"
	"time"

	"wedding-rsvp/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AdminTokenCookieName = "admin_token"

// Path limits the cookie to the admin API.
const adminCookiePath = "/api/admin"

func SetAdminTokenCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AdminTokenCookieName,
		token,
		int(expiry.Seconds()),
		adminCookiePath,
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearAdminTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		AdminTokenCookieName,
		"",
		-1,
		adminCookiePath,
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetAdminToken(c *gin.Context) string {
	token, _ := c.Cookie(AdminTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
