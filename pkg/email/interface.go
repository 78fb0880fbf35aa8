package email

import (
	"context"
	"errors"

	"github.com/sendgrid/sendgrid-go"
)

// Sender delivers one email. Implementations are safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// ErrNotConfigured is returned by the sender used when no mail transport is set up.
var ErrNotConfigured = errors.New("email: mail transport is not configured")

type unconfiguredSender struct{}

func (unconfiguredSender) Send(context.Context, Email) error { return ErrNotConfigured }

// NewUnconfigured returns a Sender that fails every delivery with ErrNotConfigured.
func NewUnconfigured() Sender {
	return unconfiguredSender{}
}

// NewSendGrid creates a Sender backed by the SendGrid v3 API.
func NewSendGrid(cfg SendGridConfig) (Sender, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("email: sendgrid api key is required")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("email: from email is required")
	}
	return &sendGridSender{
		client: sendgrid.NewSendClient(cfg.APIKey),
		cfg:    cfg,
	}, nil
}
