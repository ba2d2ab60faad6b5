package email

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client *postmark.Client
	config Config
}

// NewPostmarkClient creates a Postmark-backed template sender.
// Every message goes From SenderEmail To RecipientEmail; the provider renders
// the stored template with the message params as its model.
func NewPostmarkClient(cfg Config) (TemplateSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.RecipientEmail == "" {
		return nil, fmt.Errorf("%w: RecipientEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.RecipientEmail) {
		return nil, fmt.Errorf("%w: RecipientEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkClient{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmarkClient creates a Postmark client that panics on invalid config.
func MustNewPostmarkClient(cfg Config) TemplateSender {
	client, err := NewPostmarkClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendTemplate sends a templated email. A numeric TemplateID is treated as a
// Postmark template id, anything else as a template alias. ServiceID becomes
// the message tag. Replies go to the "email" param when it holds an address.
func (c *postmarkClient) SendTemplate(ctx context.Context, msg TemplateMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	model := make(map[string]any, len(msg.Params))
	for k, v := range msg.Params {
		model[k] = v
	}

	out := postmark.TemplatedEmail{
		TemplateModel: model,
		From:          c.config.SenderEmail,
		To:            c.config.RecipientEmail,
		Tag:           msg.ServiceID,
		TrackOpens:    true,
	}
	if id, err := strconv.ParseInt(msg.TemplateID, 10, 64); err == nil {
		out.TemplateID = id
	} else {
		out.TemplateAlias = msg.TemplateID
	}
	if replyTo := msg.Params["email"]; emailRegex.MatchString(replyTo) {
		out.ReplyTo = replyTo
	}

	resp, err := c.client.SendTemplatedEmail(ctx, out)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
