package postgre

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"report-srv/internal/activity/repository"
	"report-srv/internal/model"
	"report-srv/pkg/sqltx"
)

// ListTasksWorkedOn - Tasks on a project assigned to the user and worked on in [From, To).
func (r *implRepository) ListTasksWorkedOn(ctx context.Context, opts repository.ListTasksOptions) ([]model.TaskSnapshot, error) {
	rows, err := sqltx.From(ctx, r.db).QueryContext(ctx, tasksWorkedOnQuery, opts.ProjectID, opts.UserID, opts.From, opts.To)
	if err != nil {
		r.l.Errorf(ctx, "activity.repository.postgre.ListTasksWorkedOn: Failed to query tasks: %v", err)
		return nil, err
	}
	defer rows.Close()

	var tasks []model.TaskSnapshot
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "activity.repository.postgre.ListTasksWorkedOn: Failed to scan task: %v", err)
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "activity.repository.postgre.ListTasksWorkedOn: Rows error: %v", err)
		return nil, err
	}

	return tasks, nil
}

func scanTask(rows *sql.Rows) (model.TaskSnapshot, error) {
	var (
		t                  model.TaskSnapshot
		estimated, actual  decimal.NullDecimal
		started, completed sql.NullTime
	)
	if err := rows.Scan(&t.ID, &t.Name, &t.Status, &t.Priority,
		&estimated, &actual, &t.CreatedAt, &started, &completed); err != nil {
		return model.TaskSnapshot{}, err
	}

	if estimated.Valid {
		t.EstimatedHours = &estimated.Decimal
	}
	if actual.Valid {
		t.ActualHours = &actual.Decimal
	}
	if started.Valid {
		t.StartedAt = &started.Time
	}
	if completed.Valid {
		t.CompletedAt = &completed.Time
	}
	return t, nil
}
