package response

import (
	stdErrors "errors"
	"net/http"

	"report-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON error. HTTPError values keep their status, anything else is a 500.
func Error(c *gin.Context, err error) {
	var httpErr *errors.HTTPError
	if stdErrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   MessageBadRequest,
		Errors:    err.Error(),
	})
}

// PanicError writes a 500 for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// Unauthorized writes a 401 for a request without a valid caller scope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Unavailable writes a 503 carrying data, used when a dependency is down.
func Unavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   MessageUnavailable,
		Data:      data,
	})
}
