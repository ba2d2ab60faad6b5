package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// TemplateSender delivers a message rendered by the provider from a stored template.
type TemplateSender interface {
	SendTemplate(ctx context.Context, msg TemplateMessage) error
}

// TemplateMessage is a templated send request. Params keys must match the
// variable names the provider-side template expects, verbatim.
type TemplateMessage struct {
	ServiceID  string            `json:"service_id"`
	TemplateID string            `json:"template_id"`
	PublicKey  string            `json:"-"`
	Params     map[string]string `json:"template_params"`
}

// Validate checks the provider-independent parts of the message.
func (m TemplateMessage) Validate() error {
	if strings.TrimSpace(m.TemplateID) == "" {
		return fmt.Errorf("%w: TemplateID is required", ErrInvalidParams)
	}
	if len(m.Params) == 0 {
		return fmt.Errorf("%w: Params must not be empty", ErrInvalidParams)
	}
	return nil
}

// New builds the sender selected by cfg.Provider after checking the
// credentials that provider needs: EmailJS needs all three, Postmark the
// template id, the dev sender none.
func New(cfg Config) (TemplateSender, error) {
	if err := cfg.checkCredentials(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case ProviderEmailJS, "":
		return NewEmailJSClient(cfg)
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func (c Config) checkCredentials() error {
	var missing []string
	switch c.Provider {
	case ProviderEmailJS, "":
		if c.Credentials.ServiceID == "" {
			missing = append(missing, "EMAILJS_SERVICE_ID")
		}
		if c.Credentials.TemplateID == "" {
			missing = append(missing, "EMAILJS_TEMPLATE_ID")
		}
		if c.Credentials.PublicKey == "" {
			missing = append(missing, "EMAILJS_PUBLIC_KEY")
		}
	case ProviderPostmark:
		if c.Credentials.TemplateID == "" {
			missing = append(missing, "EMAILJS_TEMPLATE_ID")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s provider requires %s", ErrInvalidConfig, c.providerName(), strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) providerName() string {
	if c.Provider == "" {
		return ProviderEmailJS
	}
	return c.Provider
}
