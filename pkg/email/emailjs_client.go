package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const emailJSSendPath = "/api/v1.0/email/send"

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 1 << 10

type emailJSClient struct {
	endpoint   string
	privateKey string
	http       *http.Client
}

// emailJSRequest is the REST payload of EmailJS's send endpoint.
type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJSClient creates a sender for the EmailJS REST API.
// The public key travels with each message; the optional private key is sent
// as the access token required by accounts running in strict mode.
func NewEmailJSClient(cfg Config) (TemplateSender, error) {
	base, err := url.Parse(cfg.EmailJSBaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: EmailJSBaseURL must be an absolute URL", ErrInvalidConfig)
	}

	return &emailJSClient{
		endpoint:   strings.TrimRight(base.String(), "/") + emailJSSendPath,
		privateKey: cfg.EmailJSPrivateKey,
		http:       &http.Client{Timeout: cfg.EmailJSTimeout},
	}, nil
}

// MustNewEmailJSClient panics on invalid config.
func MustNewEmailJSClient(cfg Config) TemplateSender {
	client, err := NewEmailJSClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

func (c *emailJSClient) SendTemplate(ctx context.Context, msg TemplateMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if msg.ServiceID == "" {
		return fmt.Errorf("%w: ServiceID is required", ErrInvalidParams)
	}
	if msg.PublicKey == "" {
		return fmt.Errorf("%w: PublicKey is required", ErrInvalidParams)
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      msg.ServiceID,
		TemplateID:     msg.TemplateID,
		UserID:         msg.PublicKey,
		AccessToken:    c.privateKey,
		TemplateParams: msg.Params,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("emailjs error: %d - %s", resp.StatusCode, strings.TrimSpace(string(detail))),
		)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
