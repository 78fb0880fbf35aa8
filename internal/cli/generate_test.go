package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"report-srv/internal/activity"
	"report-srv/internal/model"
	"report-srv/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	report.UseCase
	got report.GenerateWeeklyInput
	sc  model.Scope
	out report.ReportOutput
	err error
}

func (f *fakeUseCase) GenerateWeekly(_ context.Context, sc model.Scope, input report.GenerateWeeklyInput) (report.ReportOutput, error) {
	f.sc = sc
	f.got = input
	return f.out, f.err
}

type fakeQueue struct {
	got []report.GenerateWeeklyInput
	err error
}

func (q *fakeQueue) EnqueueWeekly(_ context.Context, input report.GenerateWeeklyInput) error {
	q.got = append(q.got, input)
	return q.err
}

func opener(env *Env, closed *bool) Opener {
	return func(context.Context, bool) (*Env, func(), error) {
		return env, func() { *closed = true }, nil
	}
}

func TestGenerateInProcess(t *testing.T) {
	uc := &fakeUseCase{out: report.ReportOutput{
		Report: model.Report{
			ID:             "r-1",
			Title:          "Weekly Report - Week 12, 2024",
			TotalTasks:     3,
			CompletedTasks: 2,
			TotalHours:     decimal.RequireFromString("2.5"),
		},
		Items: []model.ReportItem{{ProjectID: "p-1"}},
	}}
	closed := false
	var out bytes.Buffer

	err := run([]string{"generate", "--user", "u-1", "--week", "12", "--year", "2024"}, &out, opener(&Env{UseCase: uc}, &closed))

	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, report.GenerateWeeklyInput{UserID: "u-1", Year: 2024, Week: 12}, uc.got)
	assert.Equal(t, model.SystemScope(), uc.sc)
	assert.Contains(t, out.String(), "Generated report r-1")
	assert.Contains(t, out.String(), "Tasks:    2/3 completed")
	assert.Contains(t, out.String(), "Hours:    2.50")
}

func TestGenerateDefaultsToCurrentWeek(t *testing.T) {
	uc := &fakeUseCase{}
	closed := false

	err := run([]string{"generate", "--user", "u-1"}, &bytes.Buffer{}, opener(&Env{UseCase: uc}, &closed))

	require.NoError(t, err)
	assert.Zero(t, uc.got.Week)
	assert.Zero(t, uc.got.Year)
}

func TestGenerateUserNotFound(t *testing.T) {
	uc := &fakeUseCase{err: report.ErrUserNotFound}
	closed := false

	err := run([]string{"generate", "--user", "ghost"}, &bytes.Buffer{}, opener(&Env{UseCase: uc}, &closed))

	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUserNotFound)
	assert.True(t, closed)
}

func TestGenerateRequiresUser(t *testing.T) {
	called := false
	open := func(context.Context, bool) (*Env, func(), error) {
		called = true
		return nil, nil, errors.New("unreachable")
	}

	err := run([]string{"generate"}, &bytes.Buffer{}, open)

	assert.ErrorIs(t, err, errUserRequired)
	assert.False(t, called)
}

func TestGenerateOpenFails(t *testing.T) {
	open := func(context.Context, bool) (*Env, func(), error) {
		return nil, nil, errors.New("postgres down")
	}

	err := run([]string{"generate", "--user", "u-1"}, &bytes.Buffer{}, open)

	assert.EqualError(t, err, "postgres down")
}

func TestGenerateQueue(t *testing.T) {
	t.Run("enqueues after user lookup", func(t *testing.T) {
		uc := &fakeUseCase{}
		queue := &fakeQueue{}
		closed := false
		var out bytes.Buffer
		env := &Env{
			UseCase:    uc,
			Queue:      queue,
			LookupUser: func(context.Context, string) error { return nil },
		}

		err := run([]string{"generate", "--user", "u-1", "--week", "12", "--year", "2024", "--queue"}, &out, opener(env, &closed))

		require.NoError(t, err)
		require.Len(t, queue.got, 1)
		assert.Equal(t, report.GenerateWeeklyInput{UserID: "u-1", Year: 2024, Week: 12}, queue.got[0])
		assert.Empty(t, uc.got.UserID)
		assert.Contains(t, out.String(), "Queued weekly report for user u-1")
	})

	t.Run("unknown user is not queued", func(t *testing.T) {
		queue := &fakeQueue{}
		closed := false
		env := &Env{
			UseCase:    &fakeUseCase{},
			Queue:      queue,
			LookupUser: func(context.Context, string) error { return activity.ErrUserNotFound },
		}

		err := run([]string{"generate", "--user", "ghost", "--queue"}, &bytes.Buffer{}, opener(env, &closed))

		assert.ErrorIs(t, err, activity.ErrUserNotFound)
		assert.Empty(t, queue.got)
	})

	t.Run("queue not configured", func(t *testing.T) {
		closed := false

		err := run([]string{"generate", "--user", "u-1", "--queue"}, &bytes.Buffer{}, opener(&Env{UseCase: &fakeUseCase{}}, &closed))

		assert.EqualError(t, err, "generation queue is not configured")
	})

	t.Run("enqueue error", func(t *testing.T) {
		queue := &fakeQueue{err: report.ErrEnqueueFailed}
		closed := false

		err := run([]string{"generate", "--user", "u-1", "--queue"}, &bytes.Buffer{}, opener(&Env{UseCase: &fakeUseCase{}, Queue: queue}, &closed))

		assert.ErrorIs(t, err, report.ErrEnqueueFailed)
	})
}
