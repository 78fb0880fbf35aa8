package markdown

import (
	"context"
	"fmt"
	"strings"

	"report-srv/internal/document"
	"report-srv/internal/model"
	"report-srv/pkg/util"
)

// Render compiles the report into a Markdown document.
func (r implRenderer) Render(ctx context.Context, input document.Input) (document.Document, error) {
	if input.FileName == "" {
		return document.Document{}, document.ErrEmptyFileName
	}
	if err := ctx.Err(); err != nil {
		return document.Document{}, err
	}

	var sb strings.Builder
	rpt := input.Report

	// Header
	sb.WriteString(fmt.Sprintf("# %s\n\n", rpt.Title))
	if rpt.Description != "" {
		sb.WriteString(rpt.Description + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("**Period:** %s\n\n", input.Summary.Period))
	if input.Summary.PreparedFor != "" {
		sb.WriteString(fmt.Sprintf("**Prepared for:** %s\n\n", input.Summary.PreparedFor))
	}
	sb.WriteString(fmt.Sprintf("**Projects:** %d\n\n", input.Summary.ProjectsCount))
	sb.WriteString(fmt.Sprintf("**Tasks completed:** %d/%d (%s%%)\n\n",
		rpt.CompletedTasks, rpt.TotalTasks, input.Summary.CompletionRate))
	sb.WriteString(fmt.Sprintf("**Time logged:** %s\n\n", input.Summary.TotalHours))
	sb.WriteString("---\n\n")

	if len(input.Items) == 0 {
		sb.WriteString("_No project activity in this period._\n\n")
	}

	// Sections
	for _, item := range input.Items {
		writeItem(&sb, item)
	}

	// Footer
	if input.Summary.PreparedBy != "" {
		sb.WriteString(fmt.Sprintf("*Prepared by %s.*\n", input.Summary.PreparedBy))
	}

	content := []byte(sb.String())
	return document.Document{
		Content:     content,
		FileName:    input.FileName + "." + model.DocumentFormatMarkdown.FileExtension(),
		ContentType: model.DocumentFormatMarkdown.ContentType(),
	}, nil
}

func writeItem(sb *strings.Builder, item model.ReportItem) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", item.ProjectName))

	client := joinNonEmpty(" / ", item.ContactName, item.FirmName)
	if client != "" {
		sb.WriteString(fmt.Sprintf("Client: %s\n\n", client))
	}
	if item.Notes != "" {
		sb.WriteString(item.Notes + "\n\n")
	}

	if len(item.Tasks) > 0 {
		sb.WriteString("| Task | Status | Priority | Hours |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, t := range item.Tasks {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				escapeCell(t.Name), t.Status, t.Priority, util.FormatHours(t.Hours())))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("---\n\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
