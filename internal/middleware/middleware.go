package middleware

import (
	"context"
	"runtime/debug"

	"report-srv/pkg/log"
	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceHeader carries the request trace id in and out of the service.
const TraceHeader = "X-Request-ID"

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}

// Trace tags the request context with the caller's trace id, or a fresh one,
// and echoes it back so log lines can be matched to responses.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" || len(traceID) > 128 {
			traceID = uuid.NewString()
		}
		c.Header(TraceHeader, traceID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.TraceIDKey{}, traceID))
		c.Next()
	}
}

// Recovery turns a handler panic into a 500 and logs the stack.
func Recovery(l log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s panicked: %v\n%s",
				c.Request.Method, c.Request.URL.Path, rec, debug.Stack())
			if !c.Writer.Written() {
				response.PanicError(c, rec)
			}
			c.Abort()
		}()
		c.Next()
	}
}
