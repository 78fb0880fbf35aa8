package report

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GenerateWeekly(ctx context.Context, sc model.Scope, input GenerateWeeklyInput) (ReportOutput, error)
	GenerateMonthly(ctx context.Context, sc model.Scope, input GenerateMonthlyInput) (ReportOutput, error)
	GenerateCustom(ctx context.Context, sc model.Scope, input GenerateCustomInput) (ReportOutput, error)
	GenerateProject(ctx context.Context, sc model.Scope, input GenerateProjectInput) (ReportOutput, error)
	GenerateClient(ctx context.Context, sc model.Scope, input GenerateClientInput) (ReportOutput, error)
	GenerateAutomatic(ctx context.Context) ([]ReportOutput, error)
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)
	GetReport(ctx context.Context, sc model.Scope, input GetReportInput) (ReportOutput, error)
	ListReports(ctx context.Context, sc model.Scope, input ListReportsInput) (ListReportsOutput, error)
	ExportReport(ctx context.Context, sc model.Scope, input ExportReportInput) (ExportOutput, error)
}

// Publisher announces report lifecycle changes to other services.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishGenerated(ctx context.Context, rpt model.Report) error
	PublishSent(ctx context.Context, rpt model.Report, out SendOutput) error
	PublishFailed(ctx context.Context, rpt model.Report, reason string) error
}

// JobQueue hands generation work to a background consumer.
//
//go:generate mockery --name JobQueue
type JobQueue interface {
	EnqueueWeekly(ctx context.Context, input GenerateWeeklyInput) error
}
