package usecase

import (
	"context"

	"report-srv/internal/model"
	"report-srv/internal/report"
)

// Lifecycle events are best effort. A publish failure never changes the outcome.

func (uc *implUseCase) publishGenerated(ctx context.Context, rpt model.Report) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishGenerated(ctx, rpt); err != nil {
		uc.l.Warnf(ctx, "report.usecase.publishGenerated: Failed to publish event for %s: %v", rpt.ID, err)
	}
}

func (uc *implUseCase) publishSent(ctx context.Context, rpt model.Report, out report.SendOutput) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishSent(ctx, rpt, out); err != nil {
		uc.l.Warnf(ctx, "report.usecase.publishSent: Failed to publish event for %s: %v", rpt.ID, err)
	}
}

func (uc *implUseCase) publishFailed(ctx context.Context, rpt model.Report, reason string) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishFailed(ctx, rpt, reason); err != nil {
		uc.l.Warnf(ctx, "report.usecase.publishFailed: Failed to publish event for %s: %v", rpt.ID, err)
	}
}
