package scribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationMessage(t *testing.T) {
	mailer := NewSMTPMailer(Config{MailUsername: "owner@example.com"})

	msg := mailer.message(ContactMessage{
		Name:    "A",
		Email:   "a@x.com",
		Phone:   "123",
		Message: "hi",
	})
	assert.Equal(t, []string{"a@x.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"owner@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"New Message From Blog"}, msg.GetHeader("Subject"))
}

// A submission without an email address falls back to the configured account
// as sender instead of producing an invalid From header.
func TestNotificationMessageWithoutEmail(t *testing.T) {
	mailer := NewSMTPMailer(Config{MailUsername: "owner@example.com"})

	msg := mailer.message(ContactMessage{Name: "B", Phone: "456", Message: "hello"})
	assert.Equal(t, []string{"owner@example.com"}, msg.GetHeader("From"))
}
