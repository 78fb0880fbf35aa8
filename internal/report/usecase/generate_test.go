package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestGenerateWeekly(t *testing.T) {
	env := newTestEnv(Config{})
	sc := model.Scope{UserID: "u1"}

	out, err := env.uc.GenerateWeekly(context.Background(), sc, report.GenerateWeeklyInput{Year: 2024, Week: 12})
	require.NoError(t, err)

	rpt := out.Report
	assert.Equal(t, "Weekly Report - Week 12, 2024", rpt.Title)
	assert.Equal(t, model.ReportKindWeekly, rpt.Kind)
	assert.Equal(t, model.ReportStatusGenerated, rpt.Status)
	assert.Equal(t, d(2024, 3, 18), rpt.StartDate)
	assert.Equal(t, d(2024, 3, 24), rpt.EndDate)
	assert.Equal(t, 12, rpt.WeekNumber)
	assert.Equal(t, 2024, rpt.Year)
	require.NotNil(t, rpt.GeneratedAt)
	assert.Equal(t, testNow, *rpt.GeneratedAt)

	// Totals are the sums over items.
	require.Len(t, out.Items, 2)
	var hoursSum decimal.Decimal
	var tasks, completed int
	for _, item := range out.Items {
		hoursSum = hoursSum.Add(item.TotalHours)
		tasks += item.TaskCount
		completed += item.CompletedTaskCount
		assert.LessOrEqual(t, item.CompletedTaskCount, item.TaskCount)
		assert.Len(t, item.Tasks, item.TaskCount)
		assert.Equal(t, rpt.ID, item.ReportID)
	}
	assert.True(t, hoursSum.Equal(rpt.TotalHours))
	assert.True(t, decimal.RequireFromString("2.5").Equal(rpt.TotalHours))
	assert.Equal(t, tasks, rpt.TotalTasks)
	assert.Equal(t, completed, rpt.CompletedTasks)
	assert.Equal(t, 3, rpt.TotalTasks)
	assert.Equal(t, 2, rpt.CompletedTasks)

	assert.Equal(t, 2, rpt.Metadata[report.MetaProjectsCount])
	assert.Equal(t, 66.7, rpt.Metadata[report.MetaCompletionRate])
	assert.Equal(t, 1.25, rpt.Metadata[report.MetaAverageHoursPerProject])

	first := out.Items[0]
	assert.Equal(t, "Website Redesign", first.ProjectName)
	assert.Equal(t, "Jane Doe", first.ContactName)
	assert.Equal(t, "Acme Ltd", first.FirmName)
	assert.Equal(t, "50% of tasks completed (1/2), 2h 30m logged, 1 urgent task, 1 high-priority task.", first.Notes)
	assert.Equal(t, "100% of tasks completed (1/1).", out.Items[1].Notes)

	stored, err := env.repo.GetReport(context.Background(), rpt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReportStatusGenerated, stored.Status)
	assert.Len(t, env.repo.items[rpt.ID], 2)
	assert.Equal(t, []string{rpt.ID}, env.publisher.generated)
	assert.Empty(t, env.lock.held)
}

func TestGenerateWeeklyDefaultsToCurrentWeek(t *testing.T) {
	env := newTestEnv(Config{})

	out, err := env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Report.WeekNumber)
	assert.Equal(t, d(2024, 3, 18), out.Report.StartDate)
}

func TestGenerateWeeklyFillsOnlyMissingField(t *testing.T) {
	env := newTestEnv(Config{})

	out, err := env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{Week: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Report.WeekNumber)
	assert.Equal(t, 2024, out.Report.Year)
	assert.Equal(t, "Weekly Report - Week 2, 2024", out.Report.Title)
	assert.Equal(t, d(2024, 1, 8), out.Report.StartDate)
	assert.Equal(t, d(2024, 1, 14), out.Report.EndDate)

	out, err = env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{Year: 2023})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Report.WeekNumber)
	assert.Equal(t, 2023, out.Report.Year)
	assert.Equal(t, d(2023, 3, 20), out.Report.StartDate)
}

func TestGenerateWeeklyInvalidWeek(t *testing.T) {
	env := newTestEnv(Config{})

	_, err := env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{Year: 2024, Week: 53})
	assert.ErrorIs(t, err, report.ErrInvalidWeek)
}

func TestGenerateMonthly(t *testing.T) {
	env := newTestEnv(Config{})

	out, err := env.uc.GenerateMonthly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateMonthlyInput{Year: 2024, Month: 2})
	require.NoError(t, err)
	assert.Equal(t, "Monthly Report - February 2024", out.Report.Title)
	assert.Equal(t, d(2024, 2, 1), out.Report.StartDate)
	assert.Equal(t, d(2024, 2, 29), out.Report.EndDate)
	assert.Equal(t, 2, out.Report.Month)

	_, err = env.uc.GenerateMonthly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateMonthlyInput{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, report.ErrInvalidMonth)
}

func TestGenerateMonthlyFillsOnlyMissingField(t *testing.T) {
	env := newTestEnv(Config{})

	out, err := env.uc.GenerateMonthly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateMonthlyInput{Month: 7})
	require.NoError(t, err)
	assert.Equal(t, "Monthly Report - July 2024", out.Report.Title)
	assert.Equal(t, d(2024, 7, 1), out.Report.StartDate)
	assert.Equal(t, d(2024, 7, 31), out.Report.EndDate)

	out, err = env.uc.GenerateMonthly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateMonthlyInput{Year: 2023})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Report.Month)
	assert.Equal(t, 2023, out.Report.Year)
	assert.Equal(t, d(2023, 3, 1), out.Report.StartDate)
}

func TestGenerateTotalsMatchStoredItemHours(t *testing.T) {
	env := newTestEnv(Config{})
	env.activity.tasks["p1"] = []model.TaskSnapshot{{ID: "t1", Name: "Call", Status: "in_progress", ActualHours: hours("0.125")}}
	env.activity.tasks["p2"] = []model.TaskSnapshot{{ID: "t2", Name: "Mail", Status: "in_progress", ActualHours: hours("0.125")}}

	out, err := env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{Year: 2024, Week: 12})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	sum := decimal.Zero
	for _, item := range out.Items {
		assert.Equal(t, "0.13", item.TotalHours.String())
		sum = sum.Add(item.TotalHours)
	}
	assert.True(t, sum.Equal(out.Report.TotalHours), "total %s, items sum %s", out.Report.TotalHours, sum)
	assert.Equal(t, "0.26", out.Report.TotalHours.String())
}

func TestGenerateReadsActivityInsideTransaction(t *testing.T) {
	env := newTestEnv(Config{})

	_, err := env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{Year: 2024, Week: 12})
	require.NoError(t, err)
	assert.Equal(t, 1, env.repo.beginCalls)
	assert.Zero(t, env.activity.readsOutsideTx)
}

func TestGenerateCustomEmptyWindow(t *testing.T) {
	env := newTestEnv(Config{})
	env.activity.projects["u1"] = nil

	out, err := env.uc.GenerateCustom(context.Background(), model.Scope{UserID: "u1"}, report.GenerateCustomInput{
		StartDate: d(2024, 3, 1),
		EndDate:   d(2024, 3, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Custom Report - 2024-03-01 to 2024-03-10", out.Report.Title)
	assert.Equal(t, model.ReportStatusGenerated, out.Report.Status)
	assert.Empty(t, out.Items)
	assert.True(t, out.Report.TotalHours.IsZero())
	assert.Zero(t, out.Report.TotalTasks)
	assert.Zero(t, out.Report.CompletedTasks)
	assert.Equal(t, 0.0, out.Report.Metadata[report.MetaCompletionRate])
	assert.Equal(t, 0.0, out.Report.Metadata[report.MetaAverageHoursPerProject])
}

func TestGenerateCustomInvalidRange(t *testing.T) {
	env := newTestEnv(Config{})

	_, err := env.uc.GenerateCustom(context.Background(), model.Scope{UserID: "u1"}, report.GenerateCustomInput{
		StartDate: d(2024, 3, 10),
		EndDate:   d(2024, 3, 3),
	})
	assert.ErrorIs(t, err, report.ErrInvalidRange)
	assert.Zero(t, env.repo.beginCalls)
	assert.Empty(t, env.repo.reports)
}

func TestGenerateProjectAndClientPassFilters(t *testing.T) {
	env := newTestEnv(Config{})
	sc := model.Scope{UserID: "u1"}

	out, err := env.uc.GenerateProject(context.Background(), sc, report.GenerateProjectInput{
		ProjectID: "p1", StartDate: d(2024, 3, 1), EndDate: d(2024, 3, 31),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReportKindProject, out.Report.Kind)
	assert.Equal(t, "p1", env.activity.lastInput.Filters.ProjectID)
	assert.Equal(t, "Project Report - 2024-03-01 to 2024-03-31", out.Report.Title)

	out, err = env.uc.GenerateClient(context.Background(), sc, report.GenerateClientInput{
		FirmID: "f1", StartDate: d(2024, 3, 1), EndDate: d(2024, 3, 31),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReportKindClient, out.Report.Kind)
	assert.Equal(t, "f1", env.activity.lastInput.Filters.FirmID)

	_, err = env.uc.GenerateProject(context.Background(), sc, report.GenerateProjectInput{StartDate: d(2024, 3, 1), EndDate: d(2024, 3, 2)})
	assert.ErrorIs(t, err, report.ErrProjectRequired)
	_, err = env.uc.GenerateClient(context.Background(), sc, report.GenerateClientInput{StartDate: d(2024, 3, 1), EndDate: d(2024, 3, 2)})
	assert.ErrorIs(t, err, report.ErrClientRequired)
}

func TestGenerateActivityFailureRollsBack(t *testing.T) {
	env := newTestEnv(Config{})
	cause := errors.New("activity source down")
	env.activity.failForUser["u1"] = cause

	_, err := env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{Year: 2024, Week: 12})
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrAggregationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))

	var aggErr *report.AggregationError
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, cause, aggErr.Cause)

	assert.Equal(t, 1, env.repo.rollbacks)
	assert.Empty(t, env.repo.reports)
	assert.Empty(t, env.publisher.generated)
	assert.Empty(t, env.lock.held)
}

func TestGeneratePersistenceFailure(t *testing.T) {
	env := newTestEnv(Config{})
	env.repo.createErr = repository.ErrReportCreateFailed

	_, err := env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{Year: 2024, Week: 12})
	assert.ErrorIs(t, err, report.ErrAggregationFailed)
	assert.ErrorIs(t, err, repository.ErrReportCreateFailed)
	assert.Empty(t, env.repo.reports)
}

func TestGenerateUnknownUser(t *testing.T) {
	env := newTestEnv(Config{})

	_, err := env.uc.GenerateWeekly(context.Background(), model.Scope{}, report.GenerateWeeklyInput{UserID: "ghost", Year: 2024, Week: 12})
	assert.ErrorIs(t, err, report.ErrUserNotFound)

	_, err = env.uc.GenerateWeekly(context.Background(), model.SystemScope(), report.GenerateWeeklyInput{Year: 2024, Week: 12})
	assert.ErrorIs(t, err, report.ErrUserIDRequired)
}

func TestGenerateRejectsConcurrentRun(t *testing.T) {
	env := newTestEnv(Config{})
	env.lock.held["gen:u1:weekly:2024-03-18:2024-03-24"] = "other"

	_, err := env.uc.GenerateWeekly(context.Background(), model.Scope{UserID: "u1"}, report.GenerateWeeklyInput{Year: 2024, Week: 12})
	assert.ErrorIs(t, err, report.ErrDuplicateProcessing)
	assert.Zero(t, env.repo.beginCalls)
}
