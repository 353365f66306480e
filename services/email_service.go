package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"biketrak-api/config"
)

// EmailService sends the post-registration welcome mail. It is best-effort:
// callers log failures and carry on.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// Enabled reports whether an SMTP host was configured.
func (es *EmailService) Enabled() bool {
	return es.config.SMTPHost != ""
}

func (es *EmailService) SendWelcomeEmail(email, username string) error {
	name := username
	if name == "" {
		name = email
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Biketrak")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. Log in to start managing your motorbike listings.</p>
	`, name))

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
