package postgre

import (
	"context"
	"database/sql"
	"errors"

	"report-srv/internal/activity/repository"
	"report-srv/internal/model"
)

// ListUsersWithAssignedTasks - Users that have ever been assigned a task.
func (r *implRepository) ListUsersWithAssignedTasks(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, usersWithAssignedTasksQuery)
	if err != nil {
		r.l.Errorf(ctx, "activity.repository.postgre.ListUsersWithAssignedTasks: Failed to query users: %v", err)
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			r.l.Errorf(ctx, "activity.repository.postgre.ListUsersWithAssignedTasks: Failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUserByID - Get user by primary key.
func (r *implRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, userByIDQuery, id).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "activity.repository.postgre.GetUserByID: Failed to get user: %v", err)
		return model.User{}, err
	}
	return u, nil
}
