package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"report-srv/internal/activity"
	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/pkg/util"
)

// aggregateRequest is one aggregation run over an inclusive date window.
type aggregateRequest struct {
	UserID      string
	Kind        model.ReportKind
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	WeekNumber  int
	Year        int
	Month       int
	Filters     model.ReportFilters
}

// GenerateWeekly aggregates the given ISO week. A missing year or week is
// taken from the current ISO week.
func (uc *implUseCase) GenerateWeekly(ctx context.Context, sc model.Scope, input report.GenerateWeeklyInput) (report.ReportOutput, error) {
	year, week := input.Year, input.Week
	nowYear, nowWeek := uc.clock.Now().ISOWeek()
	if year == 0 {
		year = nowYear
	}
	if week == 0 {
		week = nowWeek
	}
	if week < 1 || week > util.WeeksInISOYear(year) {
		return report.ReportOutput{}, report.ErrInvalidWeek
	}

	start := util.StartOfISOWeek(year, week, time.UTC)
	return uc.aggregate(ctx, aggregateRequest{
		UserID:     resolveUserID(sc, input.UserID),
		Kind:       model.ReportKindWeekly,
		Title:      weeklyTitle(week, year),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 6),
		WeekNumber: week,
		Year:       year,
	})
}

// GenerateMonthly aggregates a calendar month. A missing year or month is
// taken from the current date.
func (uc *implUseCase) GenerateMonthly(ctx context.Context, sc model.Scope, input report.GenerateMonthlyInput) (report.ReportOutput, error) {
	year, month := input.Year, input.Month
	now := uc.clock.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return report.ReportOutput{}, report.ErrInvalidMonth
	}

	start, end := util.MonthBounds(year, time.Month(month), time.UTC)
	return uc.aggregate(ctx, aggregateRequest{
		UserID:    resolveUserID(sc, input.UserID),
		Kind:      model.ReportKindMonthly,
		Title:     monthlyTitle(year, time.Month(month)),
		StartDate: start,
		EndDate:   end,
		Year:      year,
		Month:     month,
	})
}

func (uc *implUseCase) GenerateCustom(ctx context.Context, sc model.Scope, input report.GenerateCustomInput) (report.ReportOutput, error) {
	title := input.Title
	if title == "" {
		title = rangeTitle("Custom Report", input.StartDate, input.EndDate)
	}
	return uc.aggregate(ctx, aggregateRequest{
		UserID:      resolveUserID(sc, input.UserID),
		Kind:        model.ReportKindCustom,
		Title:       title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Filters:     input.Filters,
	})
}

func (uc *implUseCase) GenerateProject(ctx context.Context, sc model.Scope, input report.GenerateProjectInput) (report.ReportOutput, error) {
	if input.ProjectID == "" {
		return report.ReportOutput{}, report.ErrProjectRequired
	}
	return uc.aggregate(ctx, aggregateRequest{
		UserID:    resolveUserID(sc, input.UserID),
		Kind:      model.ReportKindProject,
		Title:     rangeTitle("Project Report", input.StartDate, input.EndDate),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Filters:   model.ReportFilters{ProjectID: input.ProjectID},
	})
}

func (uc *implUseCase) GenerateClient(ctx context.Context, sc model.Scope, input report.GenerateClientInput) (report.ReportOutput, error) {
	if input.ContactID == "" && input.FirmID == "" {
		return report.ReportOutput{}, report.ErrClientRequired
	}
	return uc.aggregate(ctx, aggregateRequest{
		UserID:    resolveUserID(sc, input.UserID),
		Kind:      model.ReportKindClient,
		Title:     rangeTitle("Client Report", input.StartDate, input.EndDate),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Filters:   model.ReportFilters{ContactID: input.ContactID, FirmID: input.FirmID},
	})
}

// aggregate builds and persists one report. The report row, its items and the
// final totals are written in a single transaction: on any failure nothing is kept.
func (uc *implUseCase) aggregate(ctx context.Context, req aggregateRequest) (report.ReportOutput, error) {
	if req.UserID == "" {
		return report.ReportOutput{}, report.ErrUserIDRequired
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() || req.EndDate.Before(req.StartDate) {
		return report.ReportOutput{}, report.ErrInvalidRange
	}

	if _, err := uc.activityUC.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, activity.ErrUserNotFound) {
			return report.ReportOutput{}, report.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.aggregate: Failed to get user %s: %v", req.UserID, err)
		return report.ReportOutput{}, &report.AggregationError{Cause: err}
	}

	lockOpts := repository.GenerateLockOptions{
		UserID:    req.UserID,
		Kind:      req.Kind,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	token, ok, err := uc.lock.AcquireGenerate(ctx, lockOpts, uc.config.LockTTL)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.aggregate: Failed to acquire generate lock: %v", err)
		return report.ReportOutput{}, &report.AggregationError{Cause: err}
	}
	if !ok {
		return report.ReportOutput{}, report.ErrDuplicateProcessing
	}
	defer func() {
		if err := uc.lock.ReleaseGenerate(context.WithoutCancel(ctx), lockOpts, token); err != nil {
			uc.l.Warnf(ctx, "report.usecase.aggregate: Failed to release generate lock: %v", err)
		}
	}()

	rpt, items, err := uc.aggregateInTx(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.aggregate: Aggregation for user %s failed: %v", req.UserID, err)
		return report.ReportOutput{}, &report.AggregationError{Cause: err}
	}

	uc.l.Infof(ctx, "report.usecase.aggregate: Report %s generated for user %s with %d projects",
		rpt.ID, rpt.UserID, len(items))
	uc.publishGenerated(ctx, rpt)

	return report.ReportOutput{Report: rpt, Items: items, Recipients: []model.ReportRecipient{}}, nil
}

func (uc *implUseCase) aggregateInTx(ctx context.Context, req aggregateRequest) (model.Report, []model.ReportItem, error) {
	now := uc.clock.Now()
	rpt := model.Report{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Kind:        req.Kind,
		Status:      model.ReportStatusDraft,
		StartDate:   util.StartOfDay(req.StartDate),
		EndDate:     util.StartOfDay(req.EndDate),
		WeekNumber:  req.WeekNumber,
		Year:        req.Year,
		Month:       req.Month,
		Filters:     req.Filters,
		Metadata:    map[string]any{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := rpt.Transition(model.ReportStatusGenerating); err != nil {
		return model.Report{}, nil, err
	}

	tx, err := uc.repo.BeginTx(ctx)
	if err != nil {
		return model.Report{}, nil, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil {
			uc.l.Warnf(ctx, "report.usecase.aggregateInTx: Rollback failed: %v", err)
		}
	}()
	ctx = tx.Bind(ctx)

	if err := tx.CreateReport(ctx, rpt); err != nil {
		return model.Report{}, nil, err
	}

	items, err := uc.collectItems(ctx, rpt)
	if err != nil {
		return model.Report{}, nil, err
	}
	if err := tx.CreateItems(ctx, items); err != nil {
		return model.Report{}, nil, err
	}

	for _, item := range items {
		rpt.TotalHours = rpt.TotalHours.Add(item.TotalHours)
		rpt.TotalTasks += item.TaskCount
		rpt.CompletedTasks += item.CompletedTaskCount
	}
	rpt.Metadata = buildMetadata(len(items), rpt.CompletedTasks, rpt.TotalTasks, rpt.TotalHours)
	if err := rpt.Validate(); err != nil {
		return model.Report{}, nil, err
	}

	if err := rpt.Transition(model.ReportStatusGenerated); err != nil {
		return model.Report{}, nil, err
	}
	generatedAt := uc.clock.Now()
	rpt.GeneratedAt = &generatedAt
	rpt.UpdatedAt = generatedAt

	if err := tx.MarkGenerated(ctx, repository.MarkGeneratedOptions{
		ReportID:       rpt.ID,
		TotalHours:     rpt.TotalHours,
		TotalTasks:     rpt.TotalTasks,
		CompletedTasks: rpt.CompletedTasks,
		Metadata:       rpt.Metadata,
		GeneratedAt:    generatedAt,
	}); err != nil {
		return model.Report{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return model.Report{}, nil, err
	}
	return rpt, items, nil
}

// collectItems builds one item per project the user touched in the window.
func (uc *implUseCase) collectItems(ctx context.Context, rpt model.Report) ([]model.ReportItem, error) {
	projects, err := uc.activityUC.ProjectsWithActivity(ctx, activity.ProjectsWithActivityInput{
		UserID:    rpt.UserID,
		StartDate: rpt.StartDate,
		EndDate:   rpt.EndDate,
		Filters:   rpt.Filters,
	})
	if err != nil {
		return nil, err
	}

	items := make([]model.ReportItem, 0, len(projects))
	for _, p := range projects {
		tasks, err := uc.activityUC.TasksWorkedOnInWindow(ctx, activity.TasksWorkedOnInput{
			ProjectID: p.ID,
			UserID:    rpt.UserID,
			StartDate: rpt.StartDate,
			EndDate:   rpt.EndDate,
		})
		if err != nil {
			return nil, err
		}

		item := buildItem(rpt, p, tasks, uc.clock.Now())
		if err := item.Validate(); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildItem(rpt model.Report, p model.ProjectRef, tasks []model.TaskSnapshot, now time.Time) model.ReportItem {
	item := model.ReportItem{
		ID:          uuid.NewString(),
		ReportID:    rpt.ID,
		ProjectID:   p.ID,
		ProjectName: p.Name,
		ContactName: p.ContactName,
		FirmName:    p.FirmName,
		TaskCount:   len(tasks),
		Tasks:       make([]model.TaskSnapshot, 0, len(tasks)),
		CreatedAt:   now,
	}
	for _, t := range tasks {
		item.TotalHours = item.TotalHours.Add(t.Hours())
		if t.IsCompleted() {
			item.CompletedTaskCount++
		}
		item.Tasks = append(item.Tasks, t)
	}
	// Report totals are summed from the stored item values.
	item.TotalHours = util.RoundHours(item.TotalHours)
	item.Notes = buildNotes(item)
	return item
}

func resolveUserID(sc model.Scope, userID string) string {
	if userID != "" {
		return userID
	}
	if sc.Role == model.RoleSystem {
		return ""
	}
	return sc.UserID
}
