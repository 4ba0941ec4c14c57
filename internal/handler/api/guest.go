package api

import (
	"net/http"

	"wedding-rsvp/internal/domain/guest"
	reqdto "wedding-rsvp/internal/handler/dto/request"
	resdto "wedding-rsvp/internal/handler/dto/response"
	"wedding-rsvp/internal/handler/httperr"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const MsgInvalidName = "Please enter a valid name."

type GuestHandler struct {
	guestQueries queries.GuestQueries
}

func NewGuestHandler(guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		guestQueries: guestQueries,
	}
}

// @Summary Look up a guest
// @Description Find a guest by name (fuzzy) or by an id picked from a candidate list
// @Tags rsvp
// @Accept json
// @Produce json
// @Param X-RSVP-Token header string true "Form token"
// @Param request body reqdto.LookupRequest true "Lookup request"
// @Success 200 {object} resdto.GuestResponse
// @Success 200 {object} resdto.AlreadySubmittedResponse
// @Success 200 {object} resdto.CandidatesResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /api/guest-lookup [post]
func (h *GuestHandler) Lookup(c *gin.Context) {
	var req reqdto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidName, nil)
		return
	}

	var (
		result *queries.LookupResult
		err    error
	)
	if id, ok := req.ByID(); ok {
		result, err = h.guestQueries.LookupByID(c.Request.Context(), id)
	} else {
		result, err = h.guestQueries.LookupByName(c.Request.Context(), req.Name)
	}
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidName, nil)
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, lookupBody(result))
}

func lookupBody(result *queries.LookupResult) any {
	switch result.Kind {
	case guest.ResultExactMatch:
		return resdto.GuestResponse{Guest: result.Guest}
	case guest.ResultAlreadySubmitted:
		return resdto.AlreadySubmittedResponse{AlreadySubmitted: true, GuestName: result.Guest.Name}
	case guest.ResultCandidates:
		return resdto.CandidatesResponse{Candidates: result.Candidates}
	default:
		return resdto.GuestResponse{}
	}
}
