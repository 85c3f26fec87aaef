// Package respond maps service errors onto HTTP responses
package respond

import (
	"errors"
	"net/http"

	"github.com/ilyamazurenko/Dance-partner-app/internal/service"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInternal       = "Internal server error"
	msgBadCredentials = "Could not validate credentials"
)

// Error writes the response for err. Errors of a known kind are shown to
// the client with their own message; anything else is logged under logMsg
// and answered with a generic 500.
func Error(c *gin.Context, err error, logMsg string) {
	requestID := middleware.RequestID(c)

	var status int
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		middleware.Unauthorized(c, msgBadCredentials)
		return
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		status = http.StatusBadRequest
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     msgInternal,
			"requestID": requestID,
		})

		zap.L().Error(logMsg, zap.Error(err), zap.String("requestID", requestID))
		return
	}

	zap.L().Debug(logMsg, zap.Error(err), zap.String("requestID", requestID))

	c.AbortWithStatusJSON(status, gin.H{
		"error":     err.Error(),
		"requestID": requestID,
	})
}

// BadRequest answers 400 with msg
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":     msg,
		"requestID": middleware.RequestID(c),
	})
}

// BindError answers a request whose body or query could not be bound.
// Bodies cut off by the size limiter get 413, everything else 400.
func BindError(c *gin.Context, err error) {
	requestID := middleware.RequestID(c)

	zap.L().Debug("Can't bind request", zap.Error(err), zap.String("requestID", requestID))

	if middleware.IsBodyTooLarge(err) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":     "Request body size exceeds limit",
			"requestID": requestID,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":     "Invalid request body",
		"requestID": requestID,
	})
}
