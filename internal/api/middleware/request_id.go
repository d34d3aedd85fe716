package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID is the wire header carrying the request ID.
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID is the gin context key the rest of the chain reads.
	ContextRequestID = "request_id"
)

// RequestID tags every request with an ID, honoring one supplied by the
// caller so IDs stay stable across proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(ContextRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}
