package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"argo-assistant/pkg/log"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an ID, reusing the caller's when present,
// and stores it in the request context for log correlation.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Writer.Header().Set(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Recovery turns a panic into the generic 500 body instead of an empty response.
func (mw Middleware) Recovery(onPanic gin.RecoveryFunc) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		mw.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v", err)
		onPanic(c, err)
	})
}
