// Package app assembles the report domain for the API, the consumer and the CLI.
package app

import (
	"database/sql"
	"fmt"

	"report-srv/config"
	activityPostgre "report-srv/internal/activity/repository/postgre"
	activityUsecase "report-srv/internal/activity/usecase"
	"report-srv/internal/document"
	"report-srv/internal/document/markdown"
	"report-srv/internal/document/pdf"
	"report-srv/internal/model"
	"report-srv/internal/report"
	reportProducer "report-srv/internal/report/delivery/kafka/producer"
	reportPostgre "report-srv/internal/report/repository/postgre"
	reportRedis "report-srv/internal/report/repository/redis"
	reportUsecase "report-srv/internal/report/usecase"
	templateYAML "report-srv/internal/template/repository/yaml"
	templateUsecase "report-srv/internal/template/usecase"
	"report-srv/pkg/clock"
	"report-srv/pkg/email"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
	pkgRedis "report-srv/pkg/redis"
)

// ReportDeps are the clients the report domain runs on. MinIO, KafkaProducer
// and Mailer are optional.
type ReportDeps struct {
	Logger        log.Logger
	PostgresDB    *sql.DB
	Redis         pkgRedis.IRedis
	MinIO         minio.MinIO
	KafkaProducer pkgKafka.IProducer
	Mailer        email.Sender
	Clock         clock.Clock
	Config        *config.Config
}

// NewReportUseCase wires repositories, templates, renderers and publishers
// into a report.UseCase.
func NewReportUseCase(deps ReportDeps) (report.UseCase, error) {
	if deps.Logger == nil || deps.PostgresDB == nil || deps.Redis == nil || deps.Config == nil {
		return nil, fmt.Errorf("logger, postgres, redis and config are required")
	}
	l := deps.Logger
	cfg := deps.Config
	clk := deps.Clock
	if clk == nil {
		clk = clock.New()
	}

	templateRepo, err := templateYAML.New(cfg.Report.TemplateFile, l)
	if err != nil {
		return nil, fmt.Errorf("failed to load report templates: %w", err)
	}

	mailer := deps.Mailer
	if mailer == nil {
		mailer = email.NewUnconfigured()
	}

	var publisher report.Publisher
	if deps.KafkaProducer != nil {
		publisher = reportProducer.New(l, deps.KafkaProducer, clk)
	}

	activityUC := activityUsecase.New(activityPostgre.New(deps.PostgresDB, l), l)

	return reportUsecase.New(
		l,
		reportPostgre.New(deps.PostgresDB, l),
		reportRedis.New(deps.Redis, l),
		activityUC,
		templateUsecase.New(templateRepo, l),
		[]document.Renderer{pdf.New(cfg.Report.SenderName), markdown.New()},
		mailer,
		deps.MinIO,
		publisher,
		clk,
		reportUsecase.Config{
			SenderName:        cfg.Report.SenderName,
			RenderTimeout:     cfg.Report.RenderTimeout,
			SendTimeout:       cfg.Report.SendTimeout,
			LockTTL:           cfg.Report.LockTTL,
			PartialSendStatus: model.ReportStatus(cfg.Report.PartialSendStatus),
			ExportBucket:      cfg.MinIO.Bucket,
			ExportURLExpiry:   cfg.Report.ExportURLExpiry,
			ExportFormat:      model.DocumentFormat(cfg.Report.ExportFormat),
		},
	), nil
}
