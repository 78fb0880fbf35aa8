package kafka

import "time"

// ReportEventMessage is the payload of every report lifecycle event.
type ReportEventMessage struct {
	EventType      string    `json:"event_type"`
	ReportID       string    `json:"report_id"`
	UserID         string    `json:"user_id"`
	Kind           string    `json:"kind"`
	Status         string    `json:"status"`
	Title          string    `json:"title"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	TotalHours     string    `json:"total_hours"`
	TotalTasks     int       `json:"total_tasks"`
	CompletedTasks int       `json:"completed_tasks"`
	SentCount      int       `json:"sent_count,omitempty"`
	RecipientCount int       `json:"recipient_count,omitempty"`
	Partial        bool      `json:"partial,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
