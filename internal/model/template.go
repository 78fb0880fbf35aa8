package model

// DocumentFormat is the rendered document type attached to report emails.
type DocumentFormat string

const (
	DocumentFormatPDF      DocumentFormat = "pdf"
	DocumentFormatMarkdown DocumentFormat = "markdown"
)

// IsValid reports whether f is a supported format.
func (f DocumentFormat) IsValid() bool {
	return f == DocumentFormatPDF || f == DocumentFormatMarkdown
}

// FileExtension returns the extension used for attachments of format f.
func (f DocumentFormat) FileExtension() string {
	if f == DocumentFormatMarkdown {
		return "md"
	}
	return "pdf"
}

// ContentType returns the MIME type of format f.
func (f DocumentFormat) ContentType() string {
	if f == DocumentFormatMarkdown {
		return "text/markdown; charset=utf-8"
	}
	return "application/pdf"
}

// ReportTemplate holds the subject/body patterns used when sending a report of a given kind.
// Patterns use {key} placeholders.
type ReportTemplate struct {
	Name    string
	Kind    ReportKind
	Subject string
	Body    string
	Format  DocumentFormat
	// AttachmentPrefix names the attached document, e.g. "weekly-report".
	AttachmentPrefix string
	IsDefault        bool
	IsActive         bool
}
