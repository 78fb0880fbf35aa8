package email

import "github.com/sendgrid/sendgrid-go"

// SendGridConfig holds the SendGrid credentials and default sender.
type SendGridConfig struct {
	APIKey    string
	FromName  string
	FromEmail string
}

// Email is a single message to one recipient.
type Email struct {
	ToEmail     string
	ToName      string
	FromName    string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Attachment is a file attached to an Email.
type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

type sendGridSender struct {
	client *sendgrid.Client
	cfg    SendGridConfig
}
