package libs

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

var ErrMailerNotConfigured = errors.New("SMTP configuration missing")

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type Email struct {
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg SMTPConfig) (*Mailer, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		return nil, ErrMailerNotConfigured
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:   from,
	}, nil
}

// Send delivers email with the text body first and the HTML body as the
// alternative.
func (m *Mailer) Send(email Email) error {
	if err := m.dialer.DialAndSend(buildMessage(m.from, email)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func buildMessage(from string, email Email) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", email.To)
	if email.ReplyTo != "" {
		msg.SetHeader("Reply-To", email.ReplyTo)
	}
	msg.SetHeader("Subject", email.Subject)

	msg.SetBody("text/plain", email.TextBody)
	if email.HTMLBody != "" {
		msg.AddAlternative("text/html", email.HTMLBody)
	}
	return msg
}
