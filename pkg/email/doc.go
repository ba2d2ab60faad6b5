// Package email delivers templated messages through a transactional mail
// provider. The provider stores the template; callers only pass the template
// identifier and a flat map of string params.
//
// Supported providers, all behind the TemplateSender interface:
//   - EmailJS via its REST send endpoint (NewEmailJSClient)
//   - Postmark via templated sends (NewPostmarkClient)
//   - DevSender for local development, which writes JSON and an HTML preview to disk
//
// New picks one from Config.Provider and fails early when the provider's
// Credentials are incomplete:
//
//	sender, err := email.New(cfg)
//	if err != nil {
//	    return err
//	}
//	err = sender.SendTemplate(ctx, email.TemplateMessage{
//	    ServiceID:  "service_x",
//	    TemplateID: "template_y",
//	    PublicKey:  "public_key",
//	    Params:     map[string]string{"fullName": "Jane Doe"},
//	})
//
// Errors wrap the sentinels ErrInvalidConfig, ErrInvalidParams and
// ErrFailedToSendEmail, so they can be checked with errors.Is.
package email
