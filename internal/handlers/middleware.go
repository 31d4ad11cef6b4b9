package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID ensures every request carries an X-Request-Id, generating one when
// the client did not send it. The value is echoed on the response and fed into
// outbound event attributes as the correlation id.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, rid)
		}
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}
