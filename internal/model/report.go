package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportKind is the kind of period or scope a report covers.
type ReportKind string

const (
	ReportKindWeekly  ReportKind = "weekly"
	ReportKindMonthly ReportKind = "monthly"
	ReportKindCustom  ReportKind = "custom"
	ReportKindProject ReportKind = "project"
	ReportKindClient  ReportKind = "client"
)

// IsValid reports whether k is one of the known kinds.
func (k ReportKind) IsValid() bool {
	switch k {
	case ReportKindWeekly, ReportKindMonthly, ReportKindCustom, ReportKindProject, ReportKindClient:
		return true
	}
	return false
}

// ReportStatus is the lifecycle state of a report.
type ReportStatus string

const (
	ReportStatusDraft         ReportStatus = "draft"
	ReportStatusGenerating    ReportStatus = "generating"
	ReportStatusGenerated     ReportStatus = "generated"
	ReportStatusSending       ReportStatus = "sending"
	ReportStatusSent          ReportStatus = "sent"
	ReportStatusPartiallySent ReportStatus = "partially_sent"
	ReportStatusFailed        ReportStatus = "failed"
)

var ErrInvalidTransition = errors.New("invalid report status transition")

// reportTransitions lists the forward edges of the lifecycle. Nothing points backwards.
var reportTransitions = map[ReportStatus][]ReportStatus{
	ReportStatusDraft:      {ReportStatusGenerating},
	ReportStatusGenerating: {ReportStatusGenerated, ReportStatusFailed},
	ReportStatusGenerated:  {ReportStatusSending},
	ReportStatusSending:    {ReportStatusSent, ReportStatusPartiallySent, ReportStatusFailed},
}

// IsValid reports whether s is a known status.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusGenerating, ReportStatusGenerated, ReportStatusSending,
		ReportStatusSent, ReportStatusPartiallySent, ReportStatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle allows s -> to.
func (s ReportStatus) CanTransition(to ReportStatus) bool {
	for _, next := range reportTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s ReportStatus) IsTerminal() bool {
	return len(reportTransitions[s]) == 0
}

// ReportFilters narrows aggregation to a single contact, firm or project.
type ReportFilters struct {
	ContactID string `json:"contact_id,omitempty"`
	FirmID    string `json:"firm_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f ReportFilters) IsEmpty() bool {
	return f.ContactID == "" && f.FirmID == "" && f.ProjectID == ""
}

// Report is the aggregate record summarising a user's work over a period.
type Report struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Kind        ReportKind
	Status      ReportStatus

	// Period, both ends inclusive.
	StartDate  time.Time
	EndDate    time.Time
	WeekNumber int
	Year       int
	Month      int

	Filters ReportFilters

	// Totals are always the sum over the report's items.
	TotalHours     decimal.Decimal
	TotalTasks     int
	CompletedTasks int
	Metadata       map[string]any

	ErrorMessage string

	GeneratedAt *time.Time
	SentAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Transition moves the report to `to`, refusing anything the lifecycle does not allow.
func (r *Report) Transition(to ReportStatus) error {
	if !r.Status.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}
	r.Status = to
	return nil
}

// Validate checks the report's own invariants.
func (r Report) Validate() error {
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("report %s: end date %s before start date %s", r.ID,
			r.EndDate.Format(time.DateOnly), r.StartDate.Format(time.DateOnly))
	}
	if r.CompletedTasks > r.TotalTasks {
		return fmt.Errorf("report %s: completed tasks %d exceed total tasks %d", r.ID, r.CompletedTasks, r.TotalTasks)
	}
	if r.TotalHours.IsNegative() {
		return fmt.Errorf("report %s: negative total hours", r.ID)
	}
	return nil
}

// TaskSnapshot is a frozen copy of a task as it was at generation time.
type TaskSnapshot struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Status         string           `json:"status"`
	Priority       string           `json:"priority"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours,omitempty"`
	ActualHours    *decimal.Decimal `json:"actual_hours,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	StartedAt      *time.Time       `json:"started_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
}

const (
	TaskStatusCompleted = "completed"

	TaskPriorityUrgent = "urgent"
	TaskPriorityHigh   = "high"
)

// IsCompleted reports whether the task was completed when snapshotted.
func (t TaskSnapshot) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// Hours returns the logged hours, treating a missing value as zero.
func (t TaskSnapshot) Hours() decimal.Decimal {
	if t.ActualHours == nil {
		return decimal.Zero
	}
	return *t.ActualHours
}

// ReportItem is the per-project line of a report. Names are captured at
// generation time and never re-joined.
type ReportItem struct {
	ID                 string
	ReportID           string
	ProjectID          string
	ProjectName        string
	ContactName        string
	FirmName           string
	TotalHours         decimal.Decimal
	TaskCount          int
	CompletedTaskCount int
	Tasks              []TaskSnapshot
	Notes              string
	CreatedAt          time.Time
}

// Validate checks the item's invariants.
func (i ReportItem) Validate() error {
	if i.CompletedTaskCount > i.TaskCount {
		return fmt.Errorf("report item %s: completed %d exceeds task count %d", i.ProjectID, i.CompletedTaskCount, i.TaskCount)
	}
	if i.TotalHours.IsNegative() {
		return fmt.Errorf("report item %s: negative hours", i.ProjectID)
	}
	if len(i.Tasks) != i.TaskCount {
		return fmt.Errorf("report item %s: %d snapshots for task count %d", i.ProjectID, len(i.Tasks), i.TaskCount)
	}
	return nil
}

// DeliveryStatus is the per-recipient outcome of a send.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusSent      DeliveryStatus = "sent"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// ReportRecipient is a delivery target of a report and its outcome.
// SentAt is set if and only if Status is sent or delivered.
type ReportRecipient struct {
	ID            string
	ReportID      string
	ContactID     string
	Email         string
	Name          string
	Status        DeliveryStatus
	DeliveryNotes string
	SentAt        *time.Time
	CreatedAt     time.Time
}

// MarkSent records a successful hand-off to the transport.
func (r *ReportRecipient) MarkSent(at time.Time) {
	r.Status = DeliveryStatusSent
	r.SentAt = &at
	r.DeliveryNotes = ""
}

// MarkFailed records a failed delivery attempt.
func (r *ReportRecipient) MarkFailed(reason string) {
	r.Status = DeliveryStatusFailed
	r.SentAt = nil
	r.DeliveryNotes = reason
}
