package middleware

import (
	"report-srv/pkg/response"
	"report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Scope reads the caller scope from the X-Scope header and stores it in the
// request context. Requests without a valid scope are rejected.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(scope.HeaderName)
		if header == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := scope.DecodeHeader(header)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Scope: Invalid scope header: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.WithScope(c.Request.Context(), sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
