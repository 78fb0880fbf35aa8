package httpserver

import (
	"context"
	"net/http"

	"report-srv/internal/middleware"
	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l)

	srv.gin.Use(middleware.Trace(), middleware.Recovery(srv.l), mw.AccessLog(srv.cfg.Mode == gin.DebugMode))
	srv.registerSystemRoutes()
	srv.registerFallbacks()

	return srv.setupReportDomain(ctx, srv.gin.Group(""), mw)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerFallbacks answers unknown routes with the JSON envelope instead of gin's plain text.
func (srv HTTPServer) registerFallbacks() {
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Resp{ErrorCode: http.StatusNotFound, Message: "Route not found"})
	})
	srv.gin.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.Resp{ErrorCode: http.StatusMethodNotAllowed, Message: "Method not allowed"})
	})
}
