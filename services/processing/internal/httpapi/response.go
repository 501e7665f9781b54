package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobocr/common/errors"
)

// APIResponse is the envelope of every response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, err error) {
	errType := errors.TypeOf(err)
	msg := "an internal error occurred"
	if de, ok := errors.AsDomain(err); ok && errType != errors.ErrTypeInternal {
		msg = de.Message
	}
	c.JSON(statusFor(errType), APIResponse{
		Success: false,
		Error:   &APIError{Code: string(errType), Message: msg},
	})
}

func statusFor(errType errors.ErrorType) int {
	switch errType {
	case errors.ErrTypeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrTypeNotFound:
		return http.StatusNotFound
	case errors.ErrTypeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrTypeRateLimit:
		return http.StatusTooManyRequests
	case errors.ErrTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
