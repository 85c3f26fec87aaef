// Package middleware contains any custom middleware used in the app
package middleware

import (
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDLength = 12
)

// NewRequestIDMiddleware returns a new middleware function that generates a request ID for
// each incoming request, sets it as requestID and echoes it in the X-Request-ID header
func NewRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := gonanoid.New(requestIDLength)
		if err != nil {
			// Only fails if the system's random source does
			id = "unknown"
		}

		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the id set by NewRequestIDMiddleware, or an empty string
// when the middleware didn't run
func RequestID(c *gin.Context) string {
	return c.GetString("requestID")
}
