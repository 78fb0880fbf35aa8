package template

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// FindDefault returns the default, active template for kind.
	FindDefault(ctx context.Context, kind model.ReportKind) (model.ReportTemplate, error)
}
