package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per request. Health endpoints are only logged when verbose is set.
func (m Middleware) AccessLog(verbose bool) gin.HandlerFunc {
	quiet := map[string]bool{"/health": true, "/ready": true, "/live": true}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if quiet[path] && !verbose {
			return
		}

		status := c.Writer.Status()
		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		}
	}
}
