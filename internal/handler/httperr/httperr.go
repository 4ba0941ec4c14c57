package httperr

import (
	"encoding/json"
	"maps"
	"net/http"

	"wedding-rsvp/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const MsgInternal = "Internal server error"

// Response renders as a flat object: {"error": Message} plus any Extra keys.
type Response struct {
	Status  int
	Message string
	Extra   map[string]any
}

func (r Response) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(r.Extra)+1)
	maps.Copy(body, r.Extra)
	body["error"] = r.Message
	return json.Marshal(body)
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, msg string, extra map[string]any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Message: msg, Extra: extra}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func Internal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, MsgInternal, nil)
}
