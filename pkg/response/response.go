package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "multilingual-chatbot/pkg/errors"
)

// OK sends 200 JSON with data as the body, without an envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends the error envelope. HTTPErrors keep their status and message;
// anything else is reported as a generic 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, ErrorResp{Error: httpErr.Message})
		return
	}
	InternalError(c, err)
}

// BadRequest sends 400 with the standard invalid-parameters message.
func BadRequest(c *gin.Context) {
	Error(c, pkgErrors.ErrBadRequest)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// TooManyRequests sends 429 and aborts the handler chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(pkgErrors.ErrTooManyRequests.StatusCode, ErrorResp{Error: pkgErrors.ErrTooManyRequests.Message})
}
