package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends error response with status code and message.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, err error) {
	Error(c, http.StatusNotFound, err)
}

// TooManyRequests sends a 429 response.
func TooManyRequests(c *gin.Context, err error) {
	Error(c, http.StatusTooManyRequests, err)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
