package pdf

import (
	"report-srv/internal/document"
	"report-srv/internal/model"
)

const (
	pageSize    = "A4"
	fontFamily  = "Helvetica"
	lineHeight  = 6.0
	contentWide = 190.0
)

type implRenderer struct {
	author string
}

// New returns a PDF renderer. author is written into the document info.
func New(author string) document.Renderer {
	return implRenderer{author: author}
}

func (implRenderer) Format() model.DocumentFormat {
	return model.DocumentFormatPDF
}
