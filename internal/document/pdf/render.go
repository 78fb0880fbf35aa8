package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"report-srv/internal/document"
	"report-srv/internal/model"
	"report-srv/pkg/util"
)

// Render draws the report onto A4 pages. Dates embedded in the file come from
// the report itself so equal input yields equal bytes.
func (r implRenderer) Render(ctx context.Context, input document.Input) (document.Document, error) {
	if input.FileName == "" {
		return document.Document{}, document.ErrEmptyFileName
	}
	if err := ctx.Err(); err != nil {
		return document.Document{}, err
	}

	rpt := input.Report
	stamp := documentDate(rpt)

	pdf := fpdf.New("P", "mm", pageSize, "")
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(rpt.Title, true)
	if r.author != "" {
		pdf.SetAuthor(r.author, true)
	}
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	writeHeader(pdf, tr, input)

	if len(input.Items) == 0 {
		pdf.SetFont(fontFamily, "I", 10)
		pdf.CellFormat(0, lineHeight, "No project activity in this period.", "", 1, "L", false, 0, "")
	}
	for _, item := range input.Items {
		writeItem(pdf, tr, item)
	}

	if err := pdf.Error(); err != nil {
		return document.Document{}, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return document.Document{}, err
	}

	return document.Document{
		Content:     buf.Bytes(),
		FileName:    input.FileName + "." + model.DocumentFormatPDF.FileExtension(),
		ContentType: model.DocumentFormatPDF.ContentType(),
	}, nil
}

func documentDate(rpt model.Report) time.Time {
	if rpt.GeneratedAt != nil {
		return rpt.GeneratedAt.UTC()
	}
	if !rpt.CreatedAt.IsZero() {
		return rpt.CreatedAt.UTC()
	}
	return time.Unix(0, 0).UTC()
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, input document.Input) {
	rpt := input.Report

	pdf.SetFont(fontFamily, "B", 16)
	pdf.MultiCell(contentWide, 8, tr(rpt.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "", 10)
	if rpt.Description != "" {
		pdf.MultiCell(contentWide, lineHeight, tr(rpt.Description), "", "L", false)
		pdf.Ln(1)
	}

	rows := [][2]string{
		{"Period", input.Summary.Period},
		{"Projects", fmt.Sprintf("%d", input.Summary.ProjectsCount)},
		{"Tasks completed", fmt.Sprintf("%d/%d (%s%%)", rpt.CompletedTasks, rpt.TotalTasks, input.Summary.CompletionRate)},
		{"Time logged", input.Summary.TotalHours},
	}
	if input.Summary.PreparedFor != "" {
		rows = append(rows, [2]string{"Prepared for", input.Summary.PreparedFor})
	}

	for _, row := range rows {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.CellFormat(40, lineHeight, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(0, lineHeight, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeItem(pdf *fpdf.Fpdf, tr func(string) string, item model.ReportItem) {
	pdf.SetFillColor(235, 235, 235)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 8, tr(item.ProjectName), "", 1, "L", true, 0, "")

	pdf.SetFont(fontFamily, "", 9)
	if client := clientLine(item); client != "" {
		pdf.CellFormat(0, lineHeight, tr(client), "", 1, "L", false, 0, "")
	}
	if item.Notes != "" {
		pdf.MultiCell(contentWide, 5, tr(item.Notes), "", "L", false)
	}
	pdf.Ln(1)

	if len(item.Tasks) > 0 {
		widths := []float64{100, 30, 30, 30}
		pdf.SetFont(fontFamily, "B", 9)
		for i, h := range []string{"Task", "Status", "Priority", "Hours"} {
			pdf.CellFormat(widths[i], lineHeight, h, "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(fontFamily, "", 9)
		for _, t := range item.Tasks {
			cells := []string{truncate(t.Name, 60), t.Status, t.Priority, util.FormatHours(t.Hours())}
			for i, c := range cells {
				pdf.CellFormat(widths[i], lineHeight, tr(c), "", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}
	pdf.Ln(4)
}

func clientLine(item model.ReportItem) string {
	switch {
	case item.ContactName != "" && item.FirmName != "":
		return "Client: " + item.ContactName + " / " + item.FirmName
	case item.ContactName != "":
		return "Client: " + item.ContactName
	case item.FirmName != "":
		return "Client: " + item.FirmName
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
