package usecase

import (
	"context"
	"fmt"

	"medicor-backend/config"
	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/infrastructure/mail"

	"github.com/sirupsen/logrus"
)

type ContactUsecase interface {
	SendMessage(ctx context.Context, req *dto.ContactRequest) error
}

type contactUsecase struct {
	log    *logrus.Logger
	sender mail.EmailSender
	cfg    config.SMTPConfig
}

func NewContactUsecase(log *logrus.Logger, sender mail.EmailSender, cfg config.SMTPConfig) ContactUsecase {
	return &contactUsecase{log: log, sender: sender, cfg: cfg}
}

func (u *contactUsecase) SendMessage(ctx context.Context, req *dto.ContactRequest) error {
	subject := fmt.Sprintf("Medicor Contact: %s", req.Subject)
	body := fmt.Sprintf(
		"New Contact Form Submission\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		req.Name, req.Email, req.Subject, req.Message,
	)

	if err := u.sender.Send(ctx, u.cfg.To, subject, body); err != nil {
		u.log.Warnf("Failed to send contact email: %+v", err)
		return err
	}

	u.log.WithField("from", req.Email).Info("Contact message sent")
	return nil
}
