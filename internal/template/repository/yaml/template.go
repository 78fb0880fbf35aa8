package yaml

import (
	"context"

	"report-srv/internal/model"
)

func (r *implRepository) ListByKind(ctx context.Context, kind model.ReportKind) ([]model.ReportTemplate, error) {
	out := make([]model.ReportTemplate, 0)
	for _, t := range r.templates {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out, nil
}
