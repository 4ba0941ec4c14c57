package api

import (
	"net/http"

	reqdto "wedding-rsvp/internal/handler/dto/request"
	resdto "wedding-rsvp/internal/handler/dto/response"
	"wedding-rsvp/internal/handler/httperr"
	"wedding-rsvp/internal/pkg/config"
	"wedding-rsvp/internal/pkg/cookie"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/usecase/commands"
	"wedding-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authCommands    commands.AdminAuthCommands
	responseQueries queries.ResponseQueries
	cfg             config.Config
}

func NewAdminHandler(
	authCommands commands.AdminAuthCommands,
	responseQueries queries.ResponseQueries,
	cfg config.Config,
) *AdminHandler {
	return &AdminHandler{
		authCommands:    authCommands,
		responseQueries: responseQueries,
		cfg:             cfg,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAdminDisabled):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin access is disabled", nil)
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid password", nil)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	cookie.SetAdminTokenCookie(c, h.cfg.Cookie, result.AccessToken, h.cfg.Admin.JWTDuration)
	c.JSON(http.StatusOK, resdto.AdminLoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
	})
}

// @Summary Admin logout
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	// Tokens are stateless; dropping the cookie is all the server can do.
	cookie.ClearAdminTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary List responses
// @Description All recorded RSVPs in submission order
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ResponsesListResponse
// @Failure 401 {object} map[string]string
// @Router /api/admin/responses [get]
func (h *AdminHandler) Responses(c *gin.Context) {
	list, err := h.responseQueries.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ResponsesListResponse{
		Responses: list,
		Count:     len(list),
	})
}

// @Summary Attendance summary
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SummaryResponse
// @Failure 401 {object} map[string]string
// @Router /api/admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.responseQueries.Summary(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
