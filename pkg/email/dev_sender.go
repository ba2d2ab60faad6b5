package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/bookingform/pkg/email/templates"
)

// DevSender implements TemplateSender for local development.
// It writes each message as a JSON document plus an HTML preview of the
// params instead of calling a provider.
type DevSender struct {
	dir string
	now func() time.Time
}

// NewDevSender creates a development sender that saves messages to dir.
// The directory is created on first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

// devMessage is the JSON document written for every message.
type devMessage struct {
	Timestamp  string            `json:"timestamp"`
	ServiceID  string            `json:"service_id"`
	TemplateID string            `json:"template_id"`
	Params     map[string]string `json:"template_params"`
}

// SendTemplate saves the message and its preview to the configured directory.
// The template id is optional here and only names the files.
func (d *DevSender) SendTemplate(ctx context.Context, msg TemplateMessage) error {
	if len(msg.Params) == 0 {
		return fmt.Errorf("%w: Params must not be empty", ErrInvalidParams)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.TemplateID))

	html, err := templates.Render(ctx, templates.Preview(msg.TemplateID, msg.Params))
	if err != nil {
		return fmt.Errorf("%w: failed to render preview: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	var data bytes.Buffer
	enc := json.NewEncoder(&data)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(devMessage{
		Timestamp:  now.Format(time.RFC3339),
		ServiceID:  msg.ServiceID,
		TemplateID: msg.TemplateID,
		Params:     msg.Params,
	}); err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), data.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe, lowercase filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
