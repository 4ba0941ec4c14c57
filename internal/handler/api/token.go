package api

import (
	"net/http"
	"time"

	resdto "wedding-rsvp/internal/handler/dto/response"
	"wedding-rsvp/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// TokenIssuer is satisfied by *rsvptoken.Guard.
type TokenIssuer interface {
	Issue() (string, time.Time, error)
}

type TokenHandler struct {
	issuer TokenIssuer
}

func NewTokenHandler(issuer TokenIssuer) *TokenHandler {
	return &TokenHandler{
		issuer: issuer,
	}
}

// @Summary Issue form token
// @Description Issue a short-lived token required by the lookup and submit endpoints
// @Tags rsvp
// @Produce json
// @Success 200 {object} resdto.TokenResponse
// @Failure 403 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /api/token [get]
func (h *TokenHandler) Issue(c *gin.Context) {
	token, expiresAt, err := h.issuer.Issue()
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	})
}
