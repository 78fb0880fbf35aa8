package usecase

import (
	"time"

	"report-srv/internal/activity"
	"report-srv/internal/document"
	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/internal/template"
	"report-srv/pkg/clock"
	"report-srv/pkg/email"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
)

const (
	defaultSenderName      = "CRM Reports"
	defaultRenderTimeout   = 30 * time.Second
	defaultSendTimeout     = 15 * time.Second
	defaultLockTTL         = 10 * time.Minute
	defaultExportBucket    = "crm-reports"
	defaultExportURLExpiry = time.Hour
	defaultListLimit       = 20
	maxListLimit           = 100
)

// Config holds configuration for report generation and dispatch.
type Config struct {
	SenderName    string
	RenderTimeout time.Duration
	SendTimeout   time.Duration
	LockTTL       time.Duration
	// PartialSendStatus is the final status when only some recipients were reached.
	PartialSendStatus model.ReportStatus
	ExportBucket      string
	ExportURLExpiry   time.Duration
	// ExportFormat is used when no template exists for the report kind.
	ExportFormat model.DocumentFormat
}

type implUseCase struct {
	repo       repository.PostgresRepository
	lock       repository.LockRepository
	activityUC activity.UseCase
	templateUC template.UseCase
	renderers  map[model.DocumentFormat]document.Renderer
	mailer     email.Sender
	storage    minio.MinIO
	publisher  report.Publisher
	clock      clock.Clock
	l          log.Logger
	config     Config
}

// New creates a new report UseCase implementation. storage and publisher may be nil.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	lock repository.LockRepository,
	activityUC activity.UseCase,
	templateUC template.UseCase,
	renderers []document.Renderer,
	mailer email.Sender,
	storage minio.MinIO,
	publisher report.Publisher,
	clk clock.Clock,
	cfg Config,
) report.UseCase {
	if cfg.SenderName == "" {
		cfg.SenderName = defaultSenderName
	}
	if cfg.RenderTimeout <= 0 {
		cfg.RenderTimeout = defaultRenderTimeout
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = defaultLockTTL
	}
	if cfg.PartialSendStatus != model.ReportStatusPartiallySent {
		cfg.PartialSendStatus = model.ReportStatusSent
	}
	if cfg.ExportBucket == "" {
		cfg.ExportBucket = defaultExportBucket
	}
	if cfg.ExportURLExpiry <= 0 {
		cfg.ExportURLExpiry = defaultExportURLExpiry
	}
	if !cfg.ExportFormat.IsValid() {
		cfg.ExportFormat = model.DocumentFormatPDF
	}
	if clk == nil {
		clk = clock.New()
	}

	byFormat := make(map[model.DocumentFormat]document.Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}

	return &implUseCase{
		repo:       repo,
		lock:       lock,
		activityUC: activityUC,
		templateUC: templateUC,
		renderers:  byFormat,
		mailer:     mailer,
		storage:    storage,
		publisher:  publisher,
		clock:      clk,
		l:          l,
		config:     cfg,
	}
}
