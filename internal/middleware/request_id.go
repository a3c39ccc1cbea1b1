package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID     = "X-Request-ID"
	ContextKeyRequestID = "request_id"
)

// RequestID assigns a request ID to each request, reusing the client's header if present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, reqID)
		c.Writer.Header().Set(HeaderRequestID, reqID)

		c.Next()
	}
}

// GetRequestID returns the request ID stored in the context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
