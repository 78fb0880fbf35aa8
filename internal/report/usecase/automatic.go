package usecase

import (
	"context"

	"report-srv/internal/model"
	"report-srv/internal/report"
)

// GenerateAutomatic runs the weekly aggregation for the current ISO week for
// every eligible user. A failing user is logged and left out of the result.
func (uc *implUseCase) GenerateAutomatic(ctx context.Context) ([]report.ReportOutput, error) {
	users, err := uc.activityUC.EligibleUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GenerateAutomatic: Failed to list eligible users: %v", err)
		return nil, err
	}

	year, week := uc.clock.Now().ISOWeek()
	sc := model.SystemScope()

	outputs := make([]report.ReportOutput, 0, len(users))
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			uc.l.Warnf(ctx, "report.usecase.GenerateAutomatic: Stopped after %d users: %v", len(outputs), err)
			return outputs, err
		}

		o, err := uc.GenerateWeekly(ctx, sc, report.GenerateWeeklyInput{
			UserID: u.ID,
			Year:   year,
			Week:   week,
		})
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.GenerateAutomatic: Weekly report for user %s failed: %v", u.ID, err)
			continue
		}
		outputs = append(outputs, o)
	}

	uc.l.Infof(ctx, "report.usecase.GenerateAutomatic: Generated %d/%d weekly reports for %d-W%02d",
		len(outputs), len(users), year, week)
	return outputs, nil
}
