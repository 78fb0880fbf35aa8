package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
	"report-srv/pkg/sqltx"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxWritesReportAtomically(t *testing.T) {
	ctx := context.Background()
	r, mock := newMockRepo(t)
	now := time.Date(2024, 3, 25, 9, 0, 0, 0, time.UTC)

	rpt := model.Report{
		ID:        "r-1",
		UserID:    "u-1",
		Title:     "Weekly Report - Week 12, 2024",
		Kind:      model.ReportKindWeekly,
		Status:    model.ReportStatusGenerating,
		StartDate: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	items := []model.ReportItem{
		{ID: "i-1", ReportID: "r-1", ProjectID: "p-1", ProjectName: "Website", CreatedAt: now},
		{ID: "i-2", ReportID: "r-1", ProjectID: "p-2", ProjectName: "Mobile", CreatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reports")).
		WithArgs("r-1", "u-1", rpt.Title, "", "weekly", "generating", rpt.StartDate, rpt.EndDate,
			0, 0, 0, []byte(`{}`), sqlmock.AnyArg(), 0, 0, []byte(`{}`), "", nil, nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO report_items")).
		WithArgs("i-1", "r-1", "p-1", "Website", "", "", sqlmock.AnyArg(), 0, 0, []byte(`[]`), "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO report_items")).
		WithArgs("i-2", "r-1", "p-2", "Mobile", "", "", sqlmock.AnyArg(), 0, 0, []byte(`[]`), "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'generated'")).
		WithArgs(sqlmock.AnyArg(), 3, 2, []byte(`{"project_count":2}`), now, "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := r.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateReport(ctx, rpt))
	require.NoError(t, tx.CreateItems(ctx, items))
	require.NoError(t, tx.MarkGenerated(ctx, repository.MarkGeneratedOptions{
		ReportID:       "r-1",
		TotalHours:     decimal.RequireFromString("4.5"),
		TotalTasks:     3,
		CompletedTasks: 2,
		Metadata:       map[string]any{"project_count": 2},
		GeneratedAt:    now,
	}))
	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxItemFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO report_items")).WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	tx, err := r.BeginTx(ctx)
	require.NoError(t, err)

	err = tx.CreateItems(ctx, []model.ReportItem{{ID: "i-1", ReportID: "r-1", ProjectID: "p-1"}})
	assert.ErrorIs(t, err, repository.ErrReportCreateFailed)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMarkGeneratedConflict(t *testing.T) {
	ctx := context.Background()
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'generated'")).WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := r.BeginTx(ctx)
	require.NoError(t, err)

	err = tx.MarkGenerated(ctx, repository.MarkGeneratedOptions{ReportID: "r-1"})
	assert.ErrorIs(t, err, repository.ErrStatusConflict)
}

func TestBeginTxFails(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := r.BeginTx(context.Background())

	assert.EqualError(t, err, "too many connections")
}

func TestTxBindCarriesTransaction(t *testing.T) {
	ctx := context.Background()
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := r.BeginTx(ctx)
	require.NoError(t, err)

	bound := tx.Bind(ctx)
	assert.Same(t, tx.(*implTx).tx, sqltx.From(bound, r.db))
	assert.Same(t, r.db, sqltx.From(ctx, r.db))

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}
