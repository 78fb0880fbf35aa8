package usecase

import (
	"context"
	"errors"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
)

// GetReport returns a report with its items and recipients.
func (uc *implUseCase) GetReport(ctx context.Context, sc model.Scope, input report.GetReportInput) (report.ReportOutput, error) {
	rpt, err := uc.getReport(ctx, input.ReportID)
	if err != nil {
		return report.ReportOutput{}, err
	}

	items, err := uc.repo.ListItems(ctx, rpt.ID)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GetReport: Failed to list items of %s: %v", rpt.ID, err)
		return report.ReportOutput{}, err
	}
	recipients, err := uc.repo.ListRecipients(ctx, rpt.ID)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.GetReport: Failed to list recipients of %s: %v", rpt.ID, err)
		return report.ReportOutput{}, err
	}

	return report.ReportOutput{Report: rpt, Items: items, Recipients: recipients}, nil
}

// ListReports returns a page of reports, newest first.
func (uc *implUseCase) ListReports(ctx context.Context, sc model.Scope, input report.ListReportsInput) (report.ListReportsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := max(input.Offset, 0)

	reports, total, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{
		UserID: resolveUserID(sc, input.UserID),
		Status: input.Status,
		Kind:   input.Kind,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: Failed to list reports: %v", err)
		return report.ListReportsOutput{}, err
	}

	return report.ListReportsOutput{
		Reports: reports,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (uc *implUseCase) getReport(ctx context.Context, id string) (model.Report, error) {
	if id == "" {
		return model.Report{}, report.ErrReportNotFound
	}
	rpt, err := uc.repo.GetReport(ctx, id)
	if errors.Is(err, repository.ErrReportNotFound) {
		return model.Report{}, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.getReport: Failed to get report %s: %v", id, err)
		return model.Report{}, err
	}
	return rpt, nil
}
