package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aspirepath-backend/internal/platform/apierr"
)

// ErrorEnvelope keeps the shape the web client already parses:
// a short summary in Error and the cause in Message.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

func RespondError(c *gin.Context, status int, code, summary string, err error) {
	env := ErrorEnvelope{Error: summary, Code: code}
	if err != nil {
		env.Message = err.Error()
	}
	c.JSON(status, env)
}

// RespondAPIError maps err through apierr.As. summary is the client-facing
// headline for the failed operation.
func RespondAPIError(c *gin.Context, summary string, err error) {
	ae := apierr.As(err)
	RespondError(c, ae.Status, ae.Code, summary, ae.Err)
}

// RespondOK adds success:true to payload.
func RespondOK(c *gin.Context, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(http.StatusOK, payload)
}
