package mailer

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"daily-three/pkg/log"
)

// Mailer delivers login codes.
type Mailer interface {
	SendLoginCode(ctx context.Context, email, code string, ttl time.Duration) error
}

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP creates a Mailer that sends through an SMTP relay.
func NewSMTP(cfg SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) SendLoginCode(ctx context.Context, email, code string, ttl time.Duration) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", fmt.Sprintf("Your sign-in code: %s", code))
	msg.SetBody("text/plain", loginCodeText(code, ttl))
	msg.AddAlternative("text/html", loginCodeHTML(code, ttl))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send login code email: %w", err)
	}
	return nil
}

type dryRunMailer struct {
	l log.Logger
}

// NewDryRun creates a Mailer that only logs the code. Used in development.
func NewDryRun(l log.Logger) Mailer {
	return &dryRunMailer{l: l}
}

func (m *dryRunMailer) SendLoginCode(ctx context.Context, email, code string, ttl time.Duration) error {
	m.l.Infof(ctx, "mailer dry-run: login code for %s is %s (valid %s)", email, code, ttl)
	return nil
}

func loginCodeText(code string, ttl time.Duration) string {
	return fmt.Sprintf("Your sign-in code is %s\n\nIt expires in %d minutes. If you did not ask for it, ignore this email.\n",
		code, int(ttl.Minutes()))
}

func loginCodeHTML(code string, ttl time.Duration) string {
	return fmt.Sprintf(`
		<h3>Your sign-in code</h3>
		<p style="font-size:24px;letter-spacing:4px"><strong>%s</strong></p>
		<p>It expires in %d minutes. If you did not ask for it, ignore this email.</p>
	`, code, int(ttl.Minutes()))
}
