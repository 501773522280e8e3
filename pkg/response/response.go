package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "argo-assistant/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Chat sends the 200 body of a successful chat exchange.
func Chat(c *gin.Context, text string) {
	c.JSON(http.StatusOK, ChatResp{
		Response: text,
		Status:   StatusSuccess,
	})
}

// Error sends err as a JSON error body. *errors.HTTPError values keep their code and
// message, anything else becomes a generic 500. Server errors carry status "error".
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = pkgErrors.ErrInternalServerError
	}

	if httpErr.Code < http.StatusInternalServerError {
		c.JSON(httpErr.Code, ErrorResp{Error: httpErr.Message})
		return
	}

	c.JSON(httpErr.Code, ErrorResp{
		Error:  httpErr.Message,
		Status: StatusError,
	})
}

// InternalError sends 500 with the default message. err is not exposed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{
		Error:  DefaultErrorMessage,
		Status: StatusError,
	})
}
