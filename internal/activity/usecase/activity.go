package usecase

import (
	"context"
	"errors"

	"report-srv/internal/activity"
	"report-srv/internal/activity/repository"
	"report-srv/internal/model"
	"report-srv/pkg/util"
)

// ProjectsWithActivity returns the distinct projects the user touched in the window.
func (uc *implUseCase) ProjectsWithActivity(ctx context.Context, input activity.ProjectsWithActivityInput) ([]model.ProjectRef, error) {
	if input.UserID == "" {
		return nil, activity.ErrUserIDRequired
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, activity.ErrInvalidWindow
	}

	from, to := util.DayWindow(input.StartDate, input.EndDate)
	projects, err := uc.repo.ListProjectsWithActivity(ctx, repository.ListProjectsOptions{
		UserID:    input.UserID,
		From:      from,
		To:        to,
		ContactID: input.Filters.ContactID,
		FirmID:    input.Filters.FirmID,
		ProjectID: input.Filters.ProjectID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "activity.usecase.ProjectsWithActivity: Failed to list projects for user %s: %v", input.UserID, err)
		return nil, err
	}

	return dedupeProjects(projects), nil
}

// TasksWorkedOnInWindow returns the user's tasks on a project created, started or completed in the window.
func (uc *implUseCase) TasksWorkedOnInWindow(ctx context.Context, input activity.TasksWorkedOnInput) ([]model.TaskSnapshot, error) {
	if input.ProjectID == "" {
		return nil, activity.ErrProjectRequired
	}
	if input.UserID == "" {
		return nil, activity.ErrUserIDRequired
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, activity.ErrInvalidWindow
	}

	from, to := util.DayWindow(input.StartDate, input.EndDate)
	tasks, err := uc.repo.ListTasksWorkedOn(ctx, repository.ListTasksOptions{
		ProjectID: input.ProjectID,
		UserID:    input.UserID,
		From:      from,
		To:        to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "activity.usecase.TasksWorkedOnInWindow: Failed to list tasks for project %s: %v", input.ProjectID, err)
		return nil, err
	}
	return tasks, nil
}

// EligibleUsers returns every user that has ever had a task assigned.
func (uc *implUseCase) EligibleUsers(ctx context.Context) ([]model.User, error) {
	users, err := uc.repo.ListUsersWithAssignedTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "activity.usecase.EligibleUsers: Failed to list users: %v", err)
		return nil, err
	}
	return users, nil
}

func (uc *implUseCase) GetUser(ctx context.Context, userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, activity.ErrUserIDRequired
	}
	u, err := uc.repo.GetUserByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, activity.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "activity.usecase.GetUser: Failed to get user %s: %v", userID, err)
		return model.User{}, err
	}
	return u, nil
}

// dedupeProjects keeps the first occurrence of every project id, preserving discovery order.
func dedupeProjects(projects []model.ProjectRef) []model.ProjectRef {
	seen := make(map[string]struct{}, len(projects))
	out := make([]model.ProjectRef, 0, len(projects))
	for _, p := range projects {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
