package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// BeginTx - Start a repeatable-read transaction for one report, so every activity read sees one snapshot.
func (r *implRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.BeginTx: Failed to begin transaction: %v", err)
		return nil, err
	}
	return &implTx{tx: tx, l: r.l}, nil
}

// GetReport - Get report by primary key.
func (r *implRepository) GetReport(ctx context.Context, id string) (model.Report, error) {
	rpt, err := scanReport(r.db.QueryRowContext(ctx, getReportQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Report{}, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetReport: Failed to get report %s: %v", id, err)
		return model.Report{}, err
	}
	return rpt, nil
}

// ListReports - List reports with filters and pagination. Also returns the unpaged total.
func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]model.Report, int, error) {
	query, countQuery, args := buildListReportsQuery(opts)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to count reports: %v", err)
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to list reports: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	reports := make([]model.Report, 0)
	for rows.Next() {
		rpt, err := scanReport(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to scan report: %v", err)
			return nil, 0, err
		}
		reports = append(reports, rpt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Rows error: %v", err)
		return nil, 0, err
	}

	return reports, total, nil
}

// ListItems - Items of a report in insertion order.
func (r *implRepository) ListItems(ctx context.Context, reportID string) ([]model.ReportItem, error) {
	rows, err := r.db.QueryContext(ctx, listItemsQuery, reportID)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListItems: Failed to list items: %v", err)
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ReportItem, 0)
	for rows.Next() {
		var (
			item  model.ReportItem
			tasks []byte
		)
		if err := rows.Scan(&item.ID, &item.ReportID, &item.ProjectID, &item.ProjectName, &item.ContactName,
			&item.FirmName, &item.TotalHours, &item.TaskCount, &item.CompletedTaskCount, &tasks,
			&item.Notes, &item.CreatedAt); err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListItems: Failed to scan item: %v", err)
			return nil, err
		}
		if len(tasks) > 0 {
			if err := json.Unmarshal(tasks, &item.Tasks); err != nil {
				r.l.Errorf(ctx, "report.repository.postgre.ListItems: Failed to decode tasks of item %s: %v", item.ID, err)
				return nil, err
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListItems: Rows error: %v", err)
		return nil, err
	}

	return items, nil
}

// UpdateStatus - Compare-and-set the report status.
func (r *implRepository) UpdateStatus(ctx context.Context, opts repository.UpdateStatusOptions) error {
	res, err := r.db.ExecContext(ctx, updateStatusQuery,
		string(opts.To), nullTime(opts.SentAt), opts.ErrorMessage, opts.UpdatedAt, opts.ReportID, string(opts.From))
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateStatus: Failed to update report %s: %v", opts.ReportID, err)
		return repository.ErrReportUpdateFailed
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateStatus: RowsAffected failed: %v", err)
		return repository.ErrReportUpdateFailed
	}
	if n == 0 {
		r.l.Warnf(ctx, "report.repository.postgre.UpdateStatus: Report %s is no longer %s", opts.ReportID, opts.From)
		return repository.ErrStatusConflict
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (model.Report, error) {
	var (
		rpt               model.Report
		kind, status      string
		filters, meta     []byte
		generated, sentAt sql.NullTime
	)
	if err := row.Scan(&rpt.ID, &rpt.UserID, &rpt.Title, &rpt.Description, &kind, &status,
		&rpt.StartDate, &rpt.EndDate, &rpt.WeekNumber, &rpt.Year, &rpt.Month, &filters,
		&rpt.TotalHours, &rpt.TotalTasks, &rpt.CompletedTasks, &meta, &rpt.ErrorMessage,
		&generated, &sentAt, &rpt.CreatedAt, &rpt.UpdatedAt); err != nil {
		return model.Report{}, err
	}

	rpt.Kind = model.ReportKind(kind)
	rpt.Status = model.ReportStatus(status)
	if len(filters) > 0 {
		if err := json.Unmarshal(filters, &rpt.Filters); err != nil {
			return model.Report{}, err
		}
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &rpt.Metadata); err != nil {
			return model.Report{}, err
		}
	}
	if generated.Valid {
		rpt.GeneratedAt = &generated.Time
	}
	if sentAt.Valid {
		rpt.SentAt = &sentAt.Time
	}
	return rpt, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
