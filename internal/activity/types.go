package activity

import (
	"time"

	"report-srv/internal/model"
)

// ProjectsWithActivityInput selects projects a user touched between two dates, both inclusive.
type ProjectsWithActivityInput struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Filters   model.ReportFilters
}

// TasksWorkedOnInput selects a user's tasks on one project between two dates, both inclusive.
type TasksWorkedOnInput struct {
	ProjectID string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
}
