package report

import (
	"time"

	"report-srv/internal/model"
)

const (
	MetaProjectsCount          = "projects_count"
	MetaCompletionRate         = "completion_rate"
	MetaAverageHoursPerProject = "average_hours_per_project"
)

// GenerateWeeklyInput selects an ISO week. A zero Year or Week means the current week.
type GenerateWeeklyInput struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Week   int    `json:"week"`
}

// GenerateMonthlyInput selects a calendar month. Zero values mean the current month.
type GenerateMonthlyInput struct {
	UserID string
	Year   int
	Month  int
}

type GenerateCustomInput struct {
	UserID      string
	StartDate   time.Time
	EndDate     time.Time
	Title       string
	Description string
	Filters     model.ReportFilters
}

type GenerateProjectInput struct {
	UserID    string
	ProjectID string
	StartDate time.Time
	EndDate   time.Time
}

// GenerateClientInput scopes a report to one contact or one firm.
type GenerateClientInput struct {
	UserID    string
	ContactID string
	FirmID    string
	StartDate time.Time
	EndDate   time.Time
}

type RecipientInput struct {
	Email     string
	Name      string
	ContactID string
}

type SendInput struct {
	ReportID   string
	Recipients []RecipientInput
}

// SendOutput is the outcome of a dispatch. Success is true when at least one
// recipient was reached. Partial is true when some, but not all, were.
type SendOutput struct {
	Success    bool
	Partial    bool
	Status     model.ReportStatus
	SentCount  int
	Total      int
	Recipients []model.ReportRecipient
}

type GetReportInput struct {
	ReportID string
}

type ListReportsInput struct {
	UserID string
	Status model.ReportStatus
	Kind   model.ReportKind
	Limit  int
	Offset int
}

type ListReportsOutput struct {
	Reports []model.Report
	Total   int
	Limit   int
	Offset  int
}

type ExportReportInput struct {
	ReportID string
}

type ExportOutput struct {
	DownloadURL string
	ExpiresAt   time.Time
	FileName    string
	FileSize    int64
	ContentType string
}

// ReportOutput is a report with everything attached to it.
type ReportOutput struct {
	Report     model.Report
	Items      []model.ReportItem
	Recipients []model.ReportRecipient
}
