package usecase

import (
	"context"
	"sync"
	"testing"

	"delivery-backend/internal/data/repository"
	"delivery-backend/internal/data/repository/memory"
	"delivery-backend/pkg/notify"
	"delivery-backend/pkg/utils"

	"go.uber.org/zap/zaptest"
)

type sentMessage struct {
	To      string
	Subject string
	Body    string
}

// fakeSender records messages and optionally fails.
type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeSender) SendEmail(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeSender) SendSMS(_ context.Context, to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{To: to, Body: body})
	return nil
}

type fixture struct {
	repo  *repository.Repository
	email *fakeSender
	sms   *fakeSender
	svc   *Service
}

func testConfig() *utils.Config {
	return &utils.Config{
		Email: utils.EmailConfig{ResetLinkBase: "http://localhost:5173/reset-password"},
		SMS:   utils.SMSConfig{CountryCode: "+91"},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:  memory.NewRepository(),
		email: &fakeSender{},
		sms:   &fakeSender{},
	}
	f.svc = NewService(f.repo, &notify.Notifier{Email: f.email, SMS: f.sms}, testConfig(), zaptest.NewLogger(t))
	return f
}
