package scribe

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends the admin a notification about a contact form submission.
type Mailer interface {
	Send(m ContactMessage) error
}

// SMTPMailer delivers notifications over SMTP. The configured mail username
// is both the SMTP account and the recipient address.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer builds a mailer from the mail section of cfg.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// message builds the notification email. The submitter's address is used as
// the sender when present; otherwise the configured account is used, so a
// missing email never breaks delivery.
func (s *SMTPMailer) message(m ContactMessage) *gomail.Message {
	from := m.Email
	if from == "" {
		from = s.cfg.MailUsername
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", s.cfg.MailUsername)
	msg.SetHeader("Subject", "New Message From Blog")
	msg.SetBody("text/plain", m.Message+"\n"+m.Phone)
	return msg
}

// Send delivers one notification email over SMTP.
func (s *SMTPMailer) Send(m ContactMessage) error {
	msg := s.message(m)
	d := gomail.NewDialer(s.cfg.MailHost, s.cfg.MailPort, s.cfg.MailUsername, s.cfg.MailPassword)
	d.SSL = s.cfg.MailUseSSL
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

// notifyContact dispatches the notification on its own goroutine. The contact
// row is already durably stored by the time this runs, so a transport failure
// is logged and swallowed instead of failing the request.
func (a *App) notifyContact(m ContactMessage) {
	if a.mailer == nil {
		return
	}
	go func() {
		if err := a.mailer.Send(m); err != nil {
			log.Printf("contact notification failed: %v", err)
		}
	}()
}
