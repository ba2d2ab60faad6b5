package email

import "time"

// Provider names accepted by Config.Provider.
const (
	ProviderEmailJS  = "emailjs"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Config holds mail provider configuration.
// Only the settings of the selected provider are checked by its constructor.
type Config struct {
	Provider string `env:"MAIL_PROVIDER" envDefault:"emailjs"`

	Credentials Credentials

	EmailJSBaseURL    string        `env:"EMAILJS_BASE_URL" envDefault:"https://api.emailjs.com"`
	EmailJSPrivateKey string        `env:"EMAILJS_PRIVATE_KEY"`
	EmailJSTimeout    time.Duration `env:"EMAILJS_TIMEOUT" envDefault:"0s"` // zero means no client timeout

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	RecipientEmail       string `env:"RECIPIENT_EMAIL"`

	DevDir string `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// Credentials identify the provider account and the stored template.
// Which of them are required depends on the provider, see New.
type Credentials struct {
	ServiceID  string `env:"EMAILJS_SERVICE_ID"`
	TemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
}
