package services

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"bike-shop/libs"
	"bike-shop/models"

	log "github.com/sirupsen/logrus"
)

var ErrContactUnavailable = errors.New("contact form is not available")

type EmailSender interface {
	Send(email libs.Email) error
}

// ContactService forwards storefront contact messages to the shop inbox.
type ContactService struct {
	sender EmailSender
	inbox  string
}

// NewContactService accepts a nil sender; Submit then reports
// ErrContactUnavailable.
func NewContactService(sender EmailSender, inbox string) *ContactService {
	return &ContactService{sender: sender, inbox: inbox}
}

func (s *ContactService) Submit(req models.ContactRequest) error {
	if s.sender == nil || s.inbox == "" {
		return ErrContactUnavailable
	}

	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)

	email := libs.Email{
		To:       s.inbox,
		ReplyTo:  strings.TrimSpace(req.Email),
		Subject:  fmt.Sprintf("Bike Shop enquiry from %s", name),
		TextBody: fmt.Sprintf("From: %s <%s>\n\n%s\n", name, req.Email, message),
		HTMLBody: fmt.Sprintf(
			"<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(name),
			html.EscapeString(req.Email),
			strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"),
		),
	}

	if err := s.sender.Send(email); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}

	log.WithField("reply_to", email.ReplyTo).Info("Contact message forwarded")
	return nil
}
