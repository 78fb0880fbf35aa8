package postgre

import (
	"context"

	"report-srv/internal/activity/repository"
	"report-srv/internal/model"
	"report-srv/pkg/sqltx"
)

// ListProjectsWithActivity - Distinct projects the user touched in [From, To).
func (r *implRepository) ListProjectsWithActivity(ctx context.Context, opts repository.ListProjectsOptions) ([]model.ProjectRef, error) {
	query, args := buildProjectsWithActivityQuery(opts)

	rows, err := sqltx.From(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "activity.repository.postgre.ListProjectsWithActivity: Failed to query projects: %v", err)
		return nil, err
	}
	defer rows.Close()

	var projects []model.ProjectRef
	for rows.Next() {
		var p model.ProjectRef
		if err := rows.Scan(&p.ID, &p.Name, &p.ContactID, &p.ContactName, &p.FirmID, &p.FirmName); err != nil {
			r.l.Errorf(ctx, "activity.repository.postgre.ListProjectsWithActivity: Failed to scan project: %v", err)
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "activity.repository.postgre.ListProjectsWithActivity: Rows error: %v", err)
		return nil, err
	}

	return projects, nil
}
