package rabbitmq

import "time"

// GenerateJobMessage asks a consumer to generate one weekly report.
type GenerateJobMessage struct {
	Type        string    `json:"type"`
	UserID      string    `json:"user_id"`
	Year        int       `json:"year"`
	Week        int       `json:"week"`
	RequestedAt time.Time `json:"requested_at"`
}
