package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"contact_service/internal/models"
)

var (
	ErrVerificationFailed = errors.New("reCAPTCHA verification failed")
	ErrSendFailed         = errors.New("failed to send email")
)

const (
	NotificationSubject = "New Query"
	ConfirmationSubject = "Email Received - Thank You"
)

type Verifier interface {
	Verify(ctx context.Context, token string) bool
}

type Transport interface {
	Send(ctx context.Context, msg models.EmailDispatch) error
}

// Service fronts the verification provider and the mail relay.
type Service struct {
	log          *slog.Logger
	verifier     Verifier
	transport    Transport
	verifyOnSend bool
}

// New builds a Service. With verifyOnSend set, every SendMail re-checks
// its token with the provider before handing the message to the relay.
func New(log *slog.Logger, verifier Verifier, transport Transport, verifyOnSend bool) *Service {
	return &Service{
		log:          log,
		verifier:     verifier,
		transport:    transport,
		verifyOnSend: verifyOnSend,
	}
}

func (s *Service) Verify(ctx context.Context, token string) bool {
	return s.verifier.Verify(ctx, token)
}

func (s *Service) SendMail(ctx context.Context, to, subject, body, token string) (bool, error) {
	const op = "mailer.SendMail"

	log := s.log.With(
		slog.String("op", op),
		slog.String("subject", subject),
	)

	if s.verifyOnSend && !s.verifier.Verify(ctx, token) {
		return false, fmt.Errorf("%s: %w", op, ErrVerificationFailed)
	}

	msg := models.EmailDispatch{
		To:      to,
		Subject: subject,
		Body:    body,
	}

	if err := s.transport.Send(ctx, msg); err != nil {
		return false, fmt.Errorf("%s: %w: %w", op, ErrSendFailed, err)
	}

	log.Info("email sent")

	return true, nil
}

// Notification is the message telling the site owner about a submission.
func Notification(owner string, sub models.Submission) models.EmailDispatch {
	return models.EmailDispatch{
		To:      owner,
		Subject: NotificationSubject,
		Body: fmt.Sprintf("name : %s\nEmail : %s\nSubject : %s\nMessage : %s",
			sub.Name, sub.Email, sub.Subject, sub.Message,
		),
	}
}

// Confirmation is the thank-you message sent back to the submitter.
func Confirmation(sub models.Submission, senderName string) models.EmailDispatch {
	return models.EmailDispatch{
		To:      sub.Email,
		Subject: ConfirmationSubject,
		Body: fmt.Sprintf("Hi %s\n\nThank you for contacting us. We appreciate your message and will be in touch soon.\n\nThanks and Regards\n%s",
			sub.Name, senderName,
		),
	}
}
