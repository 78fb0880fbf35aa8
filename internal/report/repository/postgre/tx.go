package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
	"report-srv/pkg/sqltx"
)

type implTx struct {
	tx *sql.Tx
	l  log.Logger
}

func (t *implTx) Bind(ctx context.Context) context.Context {
	return sqltx.WithTx(ctx, t.tx)
}

// CreateReport - Insert the report row.
func (t *implTx) CreateReport(ctx context.Context, rpt model.Report) error {
	filters, err := json.Marshal(rpt.Filters)
	if err != nil {
		return err
	}
	meta, err := json.Marshal(metadataOrEmpty(rpt.Metadata))
	if err != nil {
		return err
	}

	if _, err := t.tx.ExecContext(ctx, insertReportQuery,
		rpt.ID, rpt.UserID, rpt.Title, rpt.Description, string(rpt.Kind), string(rpt.Status),
		rpt.StartDate, rpt.EndDate, rpt.WeekNumber, rpt.Year, rpt.Month, filters,
		rpt.TotalHours, rpt.TotalTasks, rpt.CompletedTasks, meta, rpt.ErrorMessage,
		nullTime(rpt.GeneratedAt), nullTime(rpt.SentAt), rpt.CreatedAt, rpt.UpdatedAt); err != nil {
		t.l.Errorf(ctx, "report.repository.postgre.CreateReport: Failed to insert report: %v", err)
		return repository.ErrReportCreateFailed
	}
	return nil
}

// CreateItems - Insert every item of the report, in order.
func (t *implTx) CreateItems(ctx context.Context, items []model.ReportItem) error {
	for _, item := range items {
		tasks, err := json.Marshal(tasksOrEmpty(item.Tasks))
		if err != nil {
			return err
		}
		if _, err := t.tx.ExecContext(ctx, insertItemQuery,
			item.ID, item.ReportID, item.ProjectID, item.ProjectName, item.ContactName, item.FirmName,
			item.TotalHours, item.TaskCount, item.CompletedTaskCount, tasks, item.Notes, item.CreatedAt); err != nil {
			t.l.Errorf(ctx, "report.repository.postgre.CreateItems: Failed to insert item for project %s: %v", item.ProjectID, err)
			return repository.ErrReportCreateFailed
		}
	}
	return nil
}

// MarkGenerated - Store the totals and move the report from generating to generated.
func (t *implTx) MarkGenerated(ctx context.Context, opts repository.MarkGeneratedOptions) error {
	meta, err := json.Marshal(metadataOrEmpty(opts.Metadata))
	if err != nil {
		return err
	}

	res, err := t.tx.ExecContext(ctx, markGeneratedQuery,
		opts.TotalHours, opts.TotalTasks, opts.CompletedTasks, meta, opts.GeneratedAt, opts.ReportID)
	if err != nil {
		t.l.Errorf(ctx, "report.repository.postgre.MarkGenerated: Failed to update report %s: %v", opts.ReportID, err)
		return repository.ErrReportUpdateFailed
	}
	n, err := res.RowsAffected()
	if err != nil {
		return repository.ErrReportUpdateFailed
	}
	if n == 0 {
		return repository.ErrStatusConflict
	}
	return nil
}

func (t *implTx) Commit() error {
	return t.tx.Commit()
}

// Rollback is a no-op after Commit.
func (t *implTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func metadataOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func tasksOrEmpty(tasks []model.TaskSnapshot) []model.TaskSnapshot {
	if tasks == nil {
		return []model.TaskSnapshot{}
	}
	return tasks
}
