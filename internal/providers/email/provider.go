package email

import "context"

// Attachment is an inline file carried with a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Provider interface {
	Send(ctx context.Context, to []string, subject, htmlBody string, attachments ...Attachment) error
}

type NoOpProvider struct{}

func (p *NoOpProvider) Send(context.Context, []string, string, string, ...Attachment) error {
	return nil
}
