package http

import (
	"report-srv/internal/middleware"
	"report-srv/internal/report"
	"report-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l     log.Logger
	uc    report.UseCase
	queue report.JobQueue
}

// New creates the report HTTP handler. queue may be nil, in which case
// queued weekly generation is rejected.
func New(l log.Logger, uc report.UseCase, queue report.JobQueue) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		queue: queue,
	}
}
