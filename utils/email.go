// utils/email.go
package utils

import (
	"context"
	"fmt"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

const verificationSubject = "Verify your email"

func verificationBody(name, code string) (text, html string) {
	text = fmt.Sprintf("Hi %s,\n\nyour verification code is %s.\n", name, code)
	html = fmt.Sprintf("<p>Hi %s,</p><p>your verification code is <strong>%s</strong>.</p>", name, code)
	return text, html
}

// PostmarkMailer sends emails using Postmark
type PostmarkMailer struct {
	client *postmark.Client
	sender string
}

// NewPostmarkMailer creates a mailer authenticated with a server token
func NewPostmarkMailer(serverToken, sender string) *PostmarkMailer {
	return &PostmarkMailer{
		client: postmark.NewClient(serverToken, ""),
		sender: sender,
	}
}

// SendVerificationCode sends the one-time code to the user
func (m *PostmarkMailer) SendVerificationCode(_ context.Context, toEmail, name, code string) error {
	text, html := verificationBody(name, code)
	res, err := m.client.SendEmail(postmark.Email{
		From:     m.sender,
		To:       toEmail,
		Subject:  verificationSubject,
		HtmlBody: html,
		TextBody: text,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if res.ErrorCode != 0 {
		return fmt.Errorf("failed to send email: postmark error %d: %s", res.ErrorCode, res.Message)
	}
	return nil
}

// SendGridMailer sends emails using SendGrid
type SendGridMailer struct {
	client *sendgrid.Client
	sender *mail.Email
}

// NewSendGridMailer creates a mailer authenticated with an API key
func NewSendGridMailer(apiKey, sender string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		sender: mail.NewEmail("Food Delivery", sender),
	}
}

// SendVerificationCode sends the one-time code to the user
func (m *SendGridMailer) SendVerificationCode(_ context.Context, toEmail, name, code string) error {
	text, html := verificationBody(name, code)
	message := mail.NewSingleEmail(m.sender, verificationSubject, mail.NewEmail(name, toEmail), text, html)
	res, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if res.StatusCode >= 300 {
		return fmt.Errorf("failed to send email: sendgrid status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

// LogMailer writes codes to the log instead of sending them
type LogMailer struct {
	log *logrus.Entry
}

// NewLogMailer creates a LogMailer
func NewLogMailer(log *logrus.Logger) *LogMailer {
	return &LogMailer{log: log.WithField("component", "mailer")}
}

// SendVerificationCode logs the code
func (m *LogMailer) SendVerificationCode(_ context.Context, toEmail, name, code string) error {
	m.log.WithFields(logrus.Fields{"to": toEmail, "name": name, "code": code}).Info("verification code")
	return nil
}
