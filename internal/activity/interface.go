package activity

import (
	"context"

	"report-srv/internal/model"
)

// UseCase is the read-only view of CRM activity that reports are built from.
//
//go:generate mockery --name UseCase
type UseCase interface {
	ProjectsWithActivity(ctx context.Context, input ProjectsWithActivityInput) ([]model.ProjectRef, error)
	TasksWorkedOnInWindow(ctx context.Context, input TasksWorkedOnInput) ([]model.TaskSnapshot, error)
	EligibleUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID string) (model.User, error)
}
