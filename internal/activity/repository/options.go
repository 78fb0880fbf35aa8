package repository

import "time"

// ListProjectsOptions bounds a project scan to the half-open instant range [From, To).
type ListProjectsOptions struct {
	UserID    string
	From      time.Time
	To        time.Time
	ContactID string
	FirmID    string
	ProjectID string
}

// ListTasksOptions bounds a task scan to the half-open instant range [From, To).
type ListTasksOptions struct {
	ProjectID string
	UserID    string
	From      time.Time
	To        time.Time
}
