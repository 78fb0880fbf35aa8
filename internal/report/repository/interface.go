package repository

import (
	"context"
	"time"

	"report-srv/internal/model"
)

// Tx is a unit of work for writing a report and its items. Nothing it writes
// is visible to other readers before Commit. Bind returns a context whose
// activity reads run inside the same transaction.
type Tx interface {
	Bind(ctx context.Context) context.Context
	CreateReport(ctx context.Context, rpt model.Report) error
	CreateItems(ctx context.Context, items []model.ReportItem) error
	MarkGenerated(ctx context.Context, opts MarkGeneratedOptions) error
	Commit() error
	Rollback() error
}

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	BeginTx(ctx context.Context) (Tx, error)
	GetReport(ctx context.Context, id string) (model.Report, error)
	ListReports(ctx context.Context, opts ListReportsOptions) ([]model.Report, int, error)
	ListItems(ctx context.Context, reportID string) ([]model.ReportItem, error)
	UpdateStatus(ctx context.Context, opts UpdateStatusOptions) error
}

//go:generate mockery --name RecipientRepository
type RecipientRepository interface {
	CreateRecipient(ctx context.Context, rcp model.ReportRecipient) error
	UpdateRecipient(ctx context.Context, rcp model.ReportRecipient) error
	ListRecipients(ctx context.Context, reportID string) ([]model.ReportRecipient, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
	RecipientRepository
}

// LockRepository holds short-lived exclusive locks. Acquire returns a token
// that must be passed back to Release.
//
//go:generate mockery --name LockRepository
type LockRepository interface {
	AcquireSend(ctx context.Context, reportID string, ttl time.Duration) (string, bool, error)
	ReleaseSend(ctx context.Context, reportID, token string) error
	AcquireGenerate(ctx context.Context, opts GenerateLockOptions, ttl time.Duration) (string, bool, error)
	ReleaseGenerate(ctx context.Context, opts GenerateLockOptions, token string) error
}
