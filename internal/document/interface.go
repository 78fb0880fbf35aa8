package document

import (
	"context"

	"report-srv/internal/model"
)

// Renderer turns a report into a document. Output is a pure function of Input.
//
//go:generate mockery --name Renderer
type Renderer interface {
	Render(ctx context.Context, input Input) (Document, error)
	Format() model.DocumentFormat
}
