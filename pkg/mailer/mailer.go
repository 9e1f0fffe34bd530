package mailer

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"orbit-hrms/backend/config"
)

// Mailer sends credential mails over SMTP. A nil *Mailer is a no-op sender,
// so callers never need to branch on whether mail is configured.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// New returns a Mailer, or nil when no SMTP host is configured.
func New(cfg *config.MailConfig, logger *zap.Logger) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendWelcome mails a new employee their login id and temporary password.
func (m *Mailer) SendWelcome(to, name, loginID, tempPassword string) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your Orbit HRMS account")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour Orbit HRMS account is ready.\n\nLogin ID: %s\nTemporary password: %s\n\nPlease sign in and change your password.\n",
		name, loginID, tempPassword,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}

	m.logger.Info("welcome mail sent", zap.String("to", to))
	return nil
}
