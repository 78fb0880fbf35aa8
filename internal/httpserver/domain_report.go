package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"report-srv/internal/app"
	"report-srv/internal/middleware"
	reportHTTP "report-srv/internal/report/delivery/http"
)

func (srv HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc, err := app.NewReportUseCase(app.ReportDeps{
		Logger:        srv.l,
		PostgresDB:    srv.cfg.PostgresDB,
		Redis:         srv.cfg.RedisClient,
		MinIO:         srv.cfg.MinIOClient,
		KafkaProducer: srv.cfg.KafkaProducer,
		Mailer:        srv.cfg.Mailer,
		Config:        srv.cfg.Config,
	})
	if err != nil {
		return fmt.Errorf("failed to set up report domain: %w", err)
	}

	handler := reportHTTP.New(srv.l, uc, srv.cfg.JobQueue)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
