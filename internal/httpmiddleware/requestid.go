package httpmiddleware

import (
    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key the correlation id is stored under, for
// log lines written deeper in the stack.
const RequestIDKey = "request_id"

// RequestID tags each request with a correlation id, honoring one supplied by
// the client.
func RequestID() gin.HandlerFunc {
    return func(c *gin.Context) {
        id := c.GetHeader(RequestIDHeader)
        if id == "" {
            id = uuid.NewString()
        }
        c.Set(RequestIDKey, id)
        c.Writer.Header().Set(RequestIDHeader, id)
        c.Next()
    }
}
