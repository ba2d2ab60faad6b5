package booking

import (
	"context"

	"github.com/dmitrymomot/bookingform/pkg/email"
)

// Dispatcher forwards a validated payload to the mail collaborator.
// A nil error means the collaborator acknowledged the message.
type Dispatcher interface {
	Dispatch(ctx context.Context, payload map[string]string) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, payload map[string]string) error

func (f DispatcherFunc) Dispatch(ctx context.Context, payload map[string]string) error {
	return f(ctx, payload)
}

// Credentials identify the collaborator account and template.
// They are configuration, never user input.
type Credentials = email.Credentials

// MailDispatcher sends payloads as templated messages.
type MailDispatcher struct {
	sender email.TemplateSender
	creds  Credentials
}

func NewMailDispatcher(sender email.TemplateSender, creds Credentials) *MailDispatcher {
	return &MailDispatcher{sender: sender, creds: creds}
}

func (d *MailDispatcher) Dispatch(ctx context.Context, payload map[string]string) error {
	return d.sender.SendTemplate(ctx, email.TemplateMessage{
		ServiceID:  d.creds.ServiceID,
		TemplateID: d.creds.TemplateID,
		PublicKey:  d.creds.PublicKey,
		Params:     payload,
	})
}
