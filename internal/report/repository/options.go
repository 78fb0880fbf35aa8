package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"report-srv/internal/model"
)

type MarkGeneratedOptions struct {
	ReportID       string
	TotalHours     decimal.Decimal
	TotalTasks     int
	CompletedTasks int
	Metadata       map[string]any
	GeneratedAt    time.Time
}

// UpdateStatusOptions moves a report from From to To. The update only applies
// while the stored status still equals From.
type UpdateStatusOptions struct {
	ReportID     string
	From         model.ReportStatus
	To           model.ReportStatus
	SentAt       *time.Time
	ErrorMessage string
	UpdatedAt    time.Time
}

type ListReportsOptions struct {
	UserID string
	Status model.ReportStatus
	Kind   model.ReportKind
	Limit  int
	Offset int
}

type GenerateLockOptions struct {
	UserID    string
	Kind      model.ReportKind
	StartDate time.Time
	EndDate   time.Time
}
