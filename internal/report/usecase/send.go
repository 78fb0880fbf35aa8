package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"report-srv/internal/document"
	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/internal/template"
	"report-srv/pkg/email"
	"report-srv/pkg/util"
)

// Send renders a generated report once and mails it to every recipient in
// order. A failing recipient never stops the others. The report ends sent
// when at least one recipient was reached and failed otherwise.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input report.SendInput) (report.SendOutput, error) {
	if err := validateRecipients(input.Recipients); err != nil {
		return report.SendOutput{}, err
	}

	rpt, err := uc.getReport(ctx, input.ReportID)
	if err != nil {
		return report.SendOutput{}, err
	}
	if rpt.Status != model.ReportStatusGenerated {
		return report.SendOutput{Status: rpt.Status}, fmt.Errorf("%w: status is %s", report.ErrNotSendable, rpt.Status)
	}

	token, ok, err := uc.lock.AcquireSend(ctx, rpt.ID, uc.config.LockTTL)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Send: Failed to acquire send lock for %s: %v", rpt.ID, err)
		return report.SendOutput{}, err
	}
	if !ok {
		return report.SendOutput{Status: rpt.Status}, report.ErrSendInProgress
	}
	defer func() {
		if err := uc.lock.ReleaseSend(context.WithoutCancel(ctx), rpt.ID, token); err != nil {
			uc.l.Warnf(ctx, "report.usecase.Send: Failed to release send lock for %s: %v", rpt.ID, err)
		}
	}()

	if err := uc.moveStatus(ctx, &rpt, model.ReportStatusSending, ""); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return report.SendOutput{}, report.ErrSendInProgress
		}
		return report.SendOutput{}, err
	}

	// From here on the report must reach sent or failed, so the dispatch
	// outlives a caller that goes away.
	ctx = context.WithoutCancel(ctx)

	tmpl, err := uc.templateUC.FindDefault(ctx, rpt.Kind)
	if err != nil {
		reason := fmt.Sprintf("no template: %v", err)
		uc.failSend(ctx, &rpt, reason)
		if errors.Is(err, template.ErrTemplateNotFound) {
			return report.SendOutput{Status: rpt.Status}, report.ErrNoTemplate
		}
		return report.SendOutput{Status: rpt.Status}, err
	}

	items, err := uc.repo.ListItems(ctx, rpt.ID)
	if err != nil {
		uc.failSend(ctx, &rpt, fmt.Sprintf("load items: %v", err))
		return report.SendOutput{Status: rpt.Status}, err
	}

	doc, err := uc.render(ctx, tmpl.Format, document.Input{
		Report:   rpt,
		Items:    items,
		Summary:  buildSummary(rpt, items, "", uc.config.SenderName),
		FileName: attachmentName(rpt, tmpl.AttachmentPrefix),
	})
	if err != nil {
		uc.failSend(ctx, &rpt, fmt.Sprintf("render: %v", err))
		return report.SendOutput{Status: rpt.Status}, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}

	recipients := make([]model.ReportRecipient, 0, len(input.Recipients))
	sent := 0
	for _, in := range input.Recipients {
		rcp := uc.deliver(ctx, rpt, items, tmpl, doc, in)
		if rcp.Status == model.DeliveryStatusSent {
			sent++
		}
		recipients = append(recipients, rcp)
	}

	out := report.SendOutput{
		Success:    sent > 0,
		Partial:    sent > 0 && sent < len(recipients),
		SentCount:  sent,
		Total:      len(recipients),
		Recipients: recipients,
	}

	switch {
	case sent == len(recipients):
		err = uc.moveStatus(ctx, &rpt, model.ReportStatusSent, "")
	case sent > 0:
		err = uc.moveStatus(ctx, &rpt, uc.config.PartialSendStatus,
			fmt.Sprintf("%d of %d recipients failed", len(recipients)-sent, len(recipients)))
	default:
		err = uc.moveStatus(ctx, &rpt, model.ReportStatusFailed, "delivery failed for all recipients")
	}
	out.Status = rpt.Status
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Send: Failed to store final status of %s: %v", rpt.ID, err)
		return out, err
	}

	uc.l.Infof(ctx, "report.usecase.Send: Report %s delivered to %d/%d recipients, status %s",
		rpt.ID, sent, len(recipients), rpt.Status)
	if out.Success {
		uc.publishSent(ctx, rpt, out)
	} else {
		uc.publishFailed(ctx, rpt, rpt.ErrorMessage)
	}
	return out, nil
}

// deliver records and attempts delivery to one recipient. Failures are
// captured on the returned recipient.
func (uc *implUseCase) deliver(ctx context.Context, rpt model.Report, items []model.ReportItem,
	tmpl model.ReportTemplate, doc document.Document, in report.RecipientInput) model.ReportRecipient {
	rcp := model.ReportRecipient{
		ID:        uuid.NewString(),
		ReportID:  rpt.ID,
		ContactID: in.ContactID,
		Email:     strings.TrimSpace(in.Email),
		Name:      in.Name,
		Status:    model.DeliveryStatusPending,
		CreatedAt: uc.clock.Now(),
	}
	if err := uc.repo.CreateRecipient(ctx, rcp); err != nil {
		uc.l.Errorf(ctx, "report.usecase.deliver: Failed to record recipient %s: %v", rcp.Email, err)
		rcp.MarkFailed(fmt.Sprintf("failed to record recipient: %v", err))
		return rcp
	}

	vars := uc.templateVars(rpt, items, rcp)
	sendCtx, cancel := context.WithTimeout(ctx, uc.config.SendTimeout)
	err := uc.mailer.Send(sendCtx, email.Email{
		ToEmail:  rcp.Email,
		ToName:   rcp.Name,
		FromName: uc.config.SenderName,
		Subject:  template.ResolveSubject(tmpl, vars),
		Body:     template.ResolveBody(tmpl, vars),
		Attachments: []email.Attachment{{
			FileName:    doc.FileName,
			ContentType: doc.ContentType,
			Content:     doc.Content,
		}},
	})
	cancel()

	if err != nil {
		derr := &report.DeliveryError{Email: rcp.Email, Cause: err}
		uc.l.Warnf(ctx, "report.usecase.deliver: %v", derr)
		rcp.MarkFailed(derr.Error())
	} else {
		rcp.MarkSent(uc.clock.Now())
	}

	if err := uc.repo.UpdateRecipient(ctx, rcp); err != nil {
		uc.l.Errorf(ctx, "report.usecase.deliver: Failed to store outcome for %s: %v", rcp.Email, err)
	}
	return rcp
}

// render runs the renderer for format under the render timeout.
func (uc *implUseCase) render(ctx context.Context, format model.DocumentFormat, input document.Input) (document.Document, error) {
	r, ok := uc.renderers[format]
	if !ok {
		return document.Document{}, fmt.Errorf("no renderer for format %q", format)
	}

	renderCtx, cancel := context.WithTimeout(ctx, uc.config.RenderTimeout)
	defer cancel()

	type result struct {
		doc document.Document
		err error
	}
	done := make(chan result, 1)
	go func() {
		doc, err := r.Render(renderCtx, input)
		done <- result{doc: doc, err: err}
	}()

	select {
	case res := <-done:
		return res.doc, res.err
	case <-renderCtx.Done():
		return document.Document{}, renderCtx.Err()
	}
}

// moveStatus applies the transition in memory and then in storage.
func (uc *implUseCase) moveStatus(ctx context.Context, rpt *model.Report, to model.ReportStatus, reason string) error {
	from := rpt.Status
	if err := rpt.Transition(to); err != nil {
		return err
	}

	now := uc.clock.Now()
	opts := repository.UpdateStatusOptions{
		ReportID:     rpt.ID,
		From:         from,
		To:           to,
		ErrorMessage: reason,
		UpdatedAt:    now,
	}
	if to == model.ReportStatusSent || to == model.ReportStatusPartiallySent {
		opts.SentAt = &now
	}

	if err := uc.repo.UpdateStatus(ctx, opts); err != nil {
		rpt.Status = from
		return err
	}
	rpt.ErrorMessage = reason
	rpt.UpdatedAt = now
	if opts.SentAt != nil {
		rpt.SentAt = opts.SentAt
	}
	return nil
}

// failSend moves a sending report to failed. Errors are only logged.
func (uc *implUseCase) failSend(ctx context.Context, rpt *model.Report, reason string) {
	if err := uc.moveStatus(ctx, rpt, model.ReportStatusFailed, reason); err != nil {
		uc.l.Errorf(ctx, "report.usecase.failSend: Failed to mark report %s failed: %v", rpt.ID, err)
		return
	}
	uc.publishFailed(ctx, *rpt, reason)
}

func validateRecipients(recipients []report.RecipientInput) error {
	if len(recipients) == 0 {
		return report.ErrNoRecipients
	}
	for _, r := range recipients {
		if err := util.IsEmail(strings.TrimSpace(r.Email)); err != nil {
			return fmt.Errorf("%w: %q", report.ErrInvalidRecipient, r.Email)
		}
	}
	return nil
}
