package repository

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	ListProjectsWithActivity(ctx context.Context, opts ListProjectsOptions) ([]model.ProjectRef, error)
	ListTasksWorkedOn(ctx context.Context, opts ListTasksOptions) ([]model.TaskSnapshot, error)
	ListUsersWithAssignedTasks(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
}
