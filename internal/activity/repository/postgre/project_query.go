package postgre

import (
	"fmt"
	"strings"

	"report-srv/internal/activity/repository"
)

// A project counts as touched when the user created it, has an assigned task on it
// updated in the window, or logged an interaction on it in the window.
const projectsWithActivityBase = `SELECT p.id, p.name,
	COALESCE(p.contact_id::text, ''), COALESCE(c.name, ''),
	COALESCE(p.firm_id::text, ''), COALESCE(f.name, '')
FROM projects p
LEFT JOIN contacts c ON c.id = p.contact_id
LEFT JOIN firms f ON f.id = p.firm_id
WHERE (
	(p.user_id = $1 AND p.created_at >= $2 AND p.created_at < $3)
	OR EXISTS (
		SELECT 1 FROM tasks t
		WHERE t.project_id = p.id AND t.assigned_to = $1
		AND t.updated_at >= $2 AND t.updated_at < $3)
	OR EXISTS (
		SELECT 1 FROM interactions i
		WHERE i.project_id = p.id AND i.user_id = $1
		AND i.interaction_date >= $2 AND i.interaction_date < $3)
)`

// buildProjectsWithActivityQuery - Build the project scan with optional scope filters.
func buildProjectsWithActivityQuery(opts repository.ListProjectsOptions) (string, []any) {
	var sb strings.Builder
	sb.WriteString(projectsWithActivityBase)
	args := []any{opts.UserID, opts.From, opts.To}

	addFilter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		fmt.Fprintf(&sb, "\nAND %s = $%d", column, len(args))
	}
	addFilter("p.contact_id", opts.ContactID)
	addFilter("p.firm_id", opts.FirmID)
	addFilter("p.id", opts.ProjectID)

	sb.WriteString("\nORDER BY p.created_at, p.id")
	return sb.String(), args
}

// Tasks are in the window when any of created, started or completed falls inside it.
const tasksWorkedOnQuery = `SELECT t.id, t.name, t.status, t.priority,
	t.estimated_hours, t.actual_hours, t.created_at, t.started_at, t.completed_at
FROM tasks t
WHERE t.project_id = $1 AND t.assigned_to = $2
AND (
	(t.created_at >= $3 AND t.created_at < $4)
	OR (t.started_at >= $3 AND t.started_at < $4)
	OR (t.completed_at >= $3 AND t.completed_at < $4)
)
ORDER BY t.created_at, t.id`

const usersWithAssignedTasksQuery = `SELECT u.id, u.name, u.email
FROM users u
WHERE EXISTS (SELECT 1 FROM tasks t WHERE t.assigned_to = u.id)
ORDER BY u.id`

const userByIDQuery = `SELECT id, name, email FROM users WHERE id = $1`
