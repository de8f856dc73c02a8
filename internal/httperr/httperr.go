package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the admin API error body.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// Rejection is the public booking endpoint error body.
type Rejection struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// Reject writes {success:false, error:message}.
func Reject(c *gin.Context, status int, message string) {
	c.JSON(status, Rejection{
		Success: false,
		Error:   message,
	})
}
