package markdown

import (
	"report-srv/internal/document"
	"report-srv/internal/model"
)

type implRenderer struct{}

// New returns a Markdown renderer.
func New() document.Renderer {
	return implRenderer{}
}

func (implRenderer) Format() model.DocumentFormat {
	return model.DocumentFormatMarkdown
}
