package document

import (
	"errors"

	"report-srv/internal/model"
)

var ErrEmptyFileName = errors.New("document file name is required")

// Summary holds the pre-formatted report figures shown in the header.
type Summary struct {
	Period         string
	ProjectsCount  int
	TotalHours     string
	CompletionRate string
	PreparedFor    string
	PreparedBy     string
}

// Input is everything a renderer may read. FileName has no extension.
type Input struct {
	Report   model.Report
	Items    []model.ReportItem
	Summary  Summary
	FileName string
}

// Document is a rendered report ready to attach or upload.
type Document struct {
	Content     []byte
	FileName    string
	ContentType string
}

// Size returns the content length in bytes.
func (d Document) Size() int64 {
	return int64(len(d.Content))
}
