// Package notify delivers password reset messages over email and SMS.
package notify

import (
	"context"

	"delivery-backend/pkg/utils"

	"go.uber.org/zap"
)

// EmailSender delivers a plain-text email.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a text message to an E.164 phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Notifier groups the channels used by the password reset flow.
type Notifier struct {
	Email EmailSender
	SMS   SMSSender
}

// New builds SMTP and Twilio senders from config. Credentials are not
// validated until a message is sent.
func New(config *utils.Config, log *zap.Logger) *Notifier {
	return &Notifier{
		Email: NewSMTPSender(config.Email, log),
		SMS:   NewTwilioSender(config.SMS, log),
	}
}
