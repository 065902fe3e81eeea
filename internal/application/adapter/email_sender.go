package adapter

import "context"

// SendEmailInput carries one outgoing email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult is the provider's acknowledgement of a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for outgoing email delivery.
type EmailSender interface {
	// Send delivers one email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
