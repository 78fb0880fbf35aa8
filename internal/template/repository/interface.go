package repository

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListByKind returns the templates for kind in their stored order.
	ListByKind(ctx context.Context, kind model.ReportKind) ([]model.ReportTemplate, error)
}
