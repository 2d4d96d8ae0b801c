package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context for the logging middleware and writes msg to the
// client. err must not be nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := newResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func WriteInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, newResponse(http.StatusInternalServerError, internalMessage, nil))
}
