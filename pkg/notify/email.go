package notify

import (
	"context"
	"fmt"
	"time"

	"delivery-backend/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPSender sends mail over implicit TLS with PLAIN auth.
type SMTPSender struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPSender(config utils.EmailConfig, log *zap.Logger) *SMTPSender {
	return &SMTPSender{
		config: config,
		log:    log.With(zap.String("notifier", "smtp")),
	}
}

// SendEmail dials the server for every message. Missing credentials are
// reported by the server or the client library, not checked up front.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.config.User); err != nil {
		return fmt.Errorf("set sender %q: %w", s.config.User, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(s.config.Host,
		mail.WithPort(s.config.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.config.User),
		mail.WithPassword(s.config.Password),
		mail.WithTimeout(30*time.Second),
	)
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		s.log.Error("Failed to send email", zap.Error(err), zap.String("to", to))
		return err
	}

	s.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
