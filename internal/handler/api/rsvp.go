package api

import (
	"net/http"

	"wedding-rsvp/internal/domain/rsvp"
	reqdto "wedding-rsvp/internal/handler/dto/request"
	resdto "wedding-rsvp/internal/handler/dto/response"
	"wedding-rsvp/internal/handler/httperr"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidSubmission  = "Invalid submission"
	MsgInvalidPlusOneName = "Invalid plus-one name."
	MsgGuestNotFound      = "Guest not found"
	MsgAlreadySubmitted   = "RSVP already submitted"
)

type RSVPHandler struct {
	rsvpCommands commands.RSVPCommands
}

func NewRSVPHandler(rsvpCommands commands.RSVPCommands) *RSVPHandler {
	return &RSVPHandler{
		rsvpCommands: rsvpCommands,
	}
}

// @Summary Submit an RSVP
// @Description Record a guest's attendance. Each guest may respond once.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param X-RSVP-Token header string true "Form token"
// @Param request body reqdto.SubmitRSVPRequest true "RSVP"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 429 {object} map[string]string
// @Router /api/send-rsvp [post]
func (h *RSVPHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidSubmission, nil)
		return
	}

	if err := h.rsvpCommands.Submit(c.Request.Context(), req); err != nil {
		switch {
		case errs.Is(err, rsvp.ErrInvalidPlusOneName):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidPlusOneName, nil)
		case errs.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidSubmission, nil)
		case errs.Is(err, errs.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, MsgGuestNotFound, nil)
		case errs.Is(err, errs.ErrConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, MsgAlreadySubmitted,
				map[string]any{"already_submitted": true})
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SubmitResponse{Success: true})
}
