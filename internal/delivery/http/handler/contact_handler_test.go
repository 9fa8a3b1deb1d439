package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medicor-backend/config"
	"medicor-backend/internal/infrastructure/mail"
	"medicor-backend/internal/usecase"
	"medicor-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactHandler(sender *mail.MockSender) *ContactHandler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.SMTPConfig{To: "support@medicor.example"}
	return NewContactHandler(usecase.NewContactUsecase(log, sender, cfg), validator.NewValidator())
}

func TestSendMessage(t *testing.T) {
	sender := mail.NewMockSender()
	h := newContactHandler(sender)

	body := `{"name":"Alice","email":"alice@example.com","subject":"Appointment","message":"How do I book?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SendMessage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message sent successfully!"}`, rec.Body.String())

	require.Len(t, sender.Sent, 1)
	sent := sender.Sent[0]
	assert.Equal(t, "support@medicor.example", sent.To)
	assert.Equal(t, "Medicor Contact: Appointment", sent.Subject)
	assert.Contains(t, sent.Body, "Name: Alice")
	assert.Contains(t, sent.Body, "Email: alice@example.com")
	assert.Contains(t, sent.Body, "How do I book?")
}

func TestSendMessageMissingFields(t *testing.T) {
	sender := mail.NewMockSender()
	h := newContactHandler(sender)

	bodies := []string{
		`{}`,
		`{"name":"Alice","email":"alice@example.com","subject":"Hi"}`,
		`not json`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.SendMessage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"success":false,"message":"All fields are required"}`, rec.Body.String())
	}
	assert.Empty(t, sender.Sent)
}

func TestSendMessageDeliveryFailure(t *testing.T) {
	sender := mail.NewMockSender()
	sender.Err = errors.New("smtp unavailable")
	h := newContactHandler(sender)

	body := `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SendMessage(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to send message. Please try again later."}`, rec.Body.String())
}
