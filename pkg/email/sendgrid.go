package email

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// StatusError is returned when SendGrid answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("email: sendgrid responded %d: %s", e.StatusCode, e.Body)
}

func (s *sendGridSender) Send(ctx context.Context, e Email) error {
	if e.ToEmail == "" {
		return fmt.Errorf("email: recipient address is required")
	}

	resp, err := s.client.SendWithContext(ctx, buildMessage(s.cfg, e))
	if err != nil {
		return fmt.Errorf("email: send to %s: %w", e.ToEmail, err)
	}
	if resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: resp.Body}
	}
	return nil
}

func buildMessage(cfg SendGridConfig, e Email) *mail.SGMailV3 {
	fromName := e.FromName
	if fromName == "" {
		fromName = cfg.FromName
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(fromName, cfg.FromEmail))
	message.Subject = e.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(e.ToName, e.ToEmail))
	message.AddPersonalizations(p)

	message.AddContent(mail.NewContent("text/plain", e.Body))

	for _, a := range e.Attachments {
		message.AddAttachment(buildAttachment(a))
	}
	return message
}

func buildAttachment(a Attachment) *mail.Attachment {
	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(a.Content))
	attachment.SetType(a.ContentType)
	attachment.SetFilename(a.FileName)
	attachment.SetDisposition("attachment")
	return attachment
}
