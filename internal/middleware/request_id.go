package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-tracker/pkg/log"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates a UUIDv7, stores it in the
// request context for the logger and echoes it in the response.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			generated, err := uuid.NewV7()
			if err != nil {
				generated = uuid.New()
			}
			id = generated.String()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
