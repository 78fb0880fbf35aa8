package postgre

import (
	"fmt"
	"strings"

	"report-srv/internal/report/repository"
)

const reportColumns = `id, user_id, title, description, kind, status, start_date, end_date,
	week_number, year, month, filters, total_hours, total_tasks, completed_tasks, metadata,
	error_message, generated_at, sent_at, created_at, updated_at`

const insertReportQuery = `
INSERT INTO reports (` + reportColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

const getReportQuery = `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

const markGeneratedQuery = `
UPDATE reports
SET status = 'generated', total_hours = $1, total_tasks = $2, completed_tasks = $3,
	metadata = $4, generated_at = $5, updated_at = $5
WHERE id = $6 AND status = 'generating'`

const updateStatusQuery = `
UPDATE reports
SET status = $1, sent_at = COALESCE($2, sent_at), error_message = $3, updated_at = $4
WHERE id = $5 AND status = $6`

const insertItemQuery = `
INSERT INTO report_items (id, report_id, project_id, project_name, contact_name, firm_name,
	total_hours, task_count, completed_task_count, tasks, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const listItemsQuery = `
SELECT id, report_id, project_id, project_name, contact_name, firm_name,
	total_hours, task_count, completed_task_count, tasks, notes, created_at
FROM report_items
WHERE report_id = $1
ORDER BY created_at, id`

const insertRecipientQuery = `
INSERT INTO report_recipients (id, report_id, contact_id, email, name, status, delivery_notes, sent_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const updateRecipientQuery = `
UPDATE report_recipients
SET status = $1, delivery_notes = $2, sent_at = $3
WHERE id = $4`

const listRecipientsQuery = `
SELECT id, report_id, contact_id, email, name, status, delivery_notes, sent_at, created_at
FROM report_recipients
WHERE report_id = $1
ORDER BY created_at, id`

// buildListReportsQuery - Build the filtered page query and its count query.
func buildListReportsQuery(opts repository.ListReportsOptions) (string, string, []any) {
	var (
		conds []string
		args  []any
	)
	if opts.UserID != "" {
		args = append(args, opts.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if opts.Status != "" {
		args = append(args, string(opts.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if opts.Kind != "" {
		args = append(args, string(opts.Kind))
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM reports" + where

	// Sorting: most recent first
	query := "SELECT " + reportColumns + " FROM reports" + where + " ORDER BY created_at DESC, id"
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", opts.Offset)
	}

	return query, countQuery, args
}
