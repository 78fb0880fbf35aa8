package usecase

import (
	"context"
	"errors"
	"fmt"

	"report-srv/internal/document"
	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/template"
	"report-srv/pkg/minio"
)

// ExportReport renders a generated report, stores it in object storage and
// returns a presigned download URL.
func (uc *implUseCase) ExportReport(ctx context.Context, sc model.Scope, input report.ExportReportInput) (report.ExportOutput, error) {
	if uc.storage == nil {
		return report.ExportOutput{}, fmt.Errorf("%w: storage is not configured", report.ErrExportFailed)
	}

	rpt, err := uc.getReport(ctx, input.ReportID)
	if err != nil {
		return report.ExportOutput{}, err
	}
	if rpt.GeneratedAt == nil || rpt.Status == model.ReportStatusDraft || rpt.Status == model.ReportStatusGenerating {
		return report.ExportOutput{}, report.ErrNotExportable
	}

	format, prefix := uc.config.ExportFormat, ""
	tmpl, err := uc.templateUC.FindDefault(ctx, rpt.Kind)
	switch {
	case err == nil:
		format, prefix = tmpl.Format, tmpl.AttachmentPrefix
	case !errors.Is(err, template.ErrTemplateNotFound):
		uc.l.Warnf(ctx, "report.usecase.ExportReport: Template lookup failed, using %s: %v", format, err)
	}

	items, err := uc.repo.ListItems(ctx, rpt.ID)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ExportReport: Failed to list items of %s: %v", rpt.ID, err)
		return report.ExportOutput{}, err
	}

	doc, err := uc.render(ctx, format, document.Input{
		Report:   rpt,
		Items:    items,
		Summary:  buildSummary(rpt, items, "", uc.config.SenderName),
		FileName: attachmentName(rpt, prefix),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ExportReport: Render failed for %s: %v", rpt.ID, err)
		return report.ExportOutput{}, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}

	key := fmt.Sprintf("reports/%s/%s", rpt.ID, doc.FileName)
	stored, err := uc.storage.PutDocument(ctx, minio.Object{
		Bucket:      uc.config.ExportBucket,
		Key:         key,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		Content:     doc.Content,
		Metadata: map[string]string{
			"report-id":   rpt.ID,
			"report-kind": string(rpt.Kind),
			"user-id":     rpt.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ExportReport: Upload failed for %s: %v", rpt.ID, err)
		return report.ExportOutput{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	link, err := uc.storage.SignDownload(ctx, minio.SignRequest{
		Bucket:   stored.Bucket,
		Key:      stored.Key,
		FileName: doc.FileName,
		Expiry:   uc.config.ExportURLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ExportReport: Failed to sign download of %s: %v", key, err)
		return report.ExportOutput{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	return report.ExportOutput{
		DownloadURL: link.URL,
		ExpiresAt:   link.ExpiresAt,
		FileName:    doc.FileName,
		FileSize:    doc.Size(),
		ContentType: doc.ContentType,
	}, nil
}
