package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"medicor-backend/config"

	"github.com/sirupsen/logrus"
)

var ErrNotConfigured = errors.New("mail: smtp transport not configured")

// EmailSender delivers plain-text email. The SMTP implementation is
// used in production; tests swap in the mock.
type EmailSender interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

type smtpSender struct {
	cfg config.SMTPConfig
	log *logrus.Logger
}

func NewSMTPSender(cfg config.SMTPConfig, log *logrus.Logger) EmailSender {
	return &smtpSender{cfg: cfg, log: log}
}

func (s *smtpSender) Send(ctx context.Context, to string, subject string, body string) error {
	if s.cfg.Host == "" || s.cfg.Username == "" {
		return ErrNotConfigured
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", s.cfg.Username),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.cfg.Username, []string{to}, []byte(msg))
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			s.log.Warnf("Failed to send email to %s: %+v", to, err)
			return err
		}
	}

	s.log.Infof("Email sent to %s", to)
	return nil
}

// MockSender records sent messages for tests.
type MockSender struct {
	Sent []MockMessage
	Err  error
}

type MockMessage struct {
	To      string
	Subject string
	Body    string
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) Send(_ context.Context, to string, subject string, body string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, MockMessage{To: to, Subject: subject, Body: body})
	return nil
}
