package usecase

import (
	"context"

	"report-srv/internal/model"
	"report-srv/internal/template"
)

// FindDefault returns the first template of kind flagged both default and active.
func (uc *implUseCase) FindDefault(ctx context.Context, kind model.ReportKind) (model.ReportTemplate, error) {
	if !kind.IsValid() {
		return model.ReportTemplate{}, template.ErrInvalidKind
	}

	templates, err := uc.repo.ListByKind(ctx, kind)
	if err != nil {
		uc.l.Errorf(ctx, "template.usecase.FindDefault: Failed to list templates for %s: %v", kind, err)
		return model.ReportTemplate{}, err
	}

	for _, t := range templates {
		if t.IsDefault && t.IsActive {
			return t, nil
		}
	}

	uc.l.Warnf(ctx, "template.usecase.FindDefault: No default active template for %s", kind)
	return model.ReportTemplate{}, template.ErrTemplateNotFound
}
