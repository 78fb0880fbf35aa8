package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"report-srv/internal/activity"
	"report-srv/internal/activity/repository"
	"report-srv/internal/model"
	"report-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	projects    []model.ProjectRef
	tasks       []model.TaskSnapshot
	users       []model.User
	err         error
	projectOpts repository.ListProjectsOptions
	taskOpts    repository.ListTasksOptions
	userByID    map[string]model.User
}

func (f *fakeRepo) ListProjectsWithActivity(_ context.Context, opts repository.ListProjectsOptions) ([]model.ProjectRef, error) {
	f.projectOpts = opts
	return f.projects, f.err
}

func (f *fakeRepo) ListTasksWorkedOn(_ context.Context, opts repository.ListTasksOptions) ([]model.TaskSnapshot, error) {
	f.taskOpts = opts
	return f.tasks, f.err
}

func (f *fakeRepo) ListUsersWithAssignedTasks(context.Context) ([]model.User, error) {
	return f.users, f.err
}

func (f *fakeRepo) GetUserByID(_ context.Context, id string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	u, ok := f.userByID[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectsWithActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("window covers the whole end day and duplicates are dropped", func(t *testing.T) {
		repo := &fakeRepo{projects: []model.ProjectRef{
			{ID: "p-1", Name: "Website"},
			{ID: "p-2", Name: "Mobile"},
			{ID: "p-1", Name: "Website"},
		}}
		uc := New(repo, log.NewNop())

		projects, err := uc.ProjectsWithActivity(ctx, activity.ProjectsWithActivityInput{
			UserID:    "u-1",
			StartDate: day(2024, 3, 18),
			EndDate:   day(2024, 3, 24),
			Filters:   model.ReportFilters{FirmID: "f-1"},
		})

		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, []string{"p-1", "p-2"}, []string{projects[0].ID, projects[1].ID})
		assert.Equal(t, day(2024, 3, 18), repo.projectOpts.From)
		assert.Equal(t, day(2024, 3, 25), repo.projectOpts.To)
		assert.Equal(t, "f-1", repo.projectOpts.FirmID)
	})

	t.Run("validation", func(t *testing.T) {
		uc := New(&fakeRepo{}, log.NewNop())

		_, err := uc.ProjectsWithActivity(ctx, activity.ProjectsWithActivityInput{StartDate: day(2024, 3, 18), EndDate: day(2024, 3, 24)})
		assert.ErrorIs(t, err, activity.ErrUserIDRequired)

		_, err = uc.ProjectsWithActivity(ctx, activity.ProjectsWithActivityInput{UserID: "u-1", StartDate: day(2024, 3, 24), EndDate: day(2024, 3, 18)})
		assert.ErrorIs(t, err, activity.ErrInvalidWindow)
	})

	t.Run("repository error", func(t *testing.T) {
		boom := errors.New("db down")
		uc := New(&fakeRepo{err: boom}, log.NewNop())

		_, err := uc.ProjectsWithActivity(ctx, activity.ProjectsWithActivityInput{UserID: "u-1", StartDate: day(2024, 3, 18), EndDate: day(2024, 3, 18)})
		assert.ErrorIs(t, err, boom)
	})
}

func TestTasksWorkedOnInWindow(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{tasks: []model.TaskSnapshot{{ID: "t-1"}}}
	uc := New(repo, log.NewNop())

	tasks, err := uc.TasksWorkedOnInWindow(ctx, activity.TasksWorkedOnInput{
		ProjectID: "p-1",
		UserID:    "u-1",
		StartDate: day(2024, 3, 1),
		EndDate:   day(2024, 3, 31),
	})

	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, day(2024, 4, 1), repo.taskOpts.To)

	_, err = uc.TasksWorkedOnInWindow(ctx, activity.TasksWorkedOnInput{UserID: "u-1"})
	assert.ErrorIs(t, err, activity.ErrProjectRequired)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	uc := New(&fakeRepo{userByID: map[string]model.User{"u-1": {ID: "u-1", Name: "One"}}}, log.NewNop())

	u, err := uc.GetUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "One", u.Name)

	_, err = uc.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, activity.ErrUserNotFound)

	_, err = uc.GetUser(ctx, "")
	assert.ErrorIs(t, err, activity.ErrUserIDRequired)
}

func TestEligibleUsers(t *testing.T) {
	uc := New(&fakeRepo{users: []model.User{{ID: "u-1"}, {ID: "u-2"}}}, log.NewNop())

	users, err := uc.EligibleUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}
