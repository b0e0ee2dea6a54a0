package mailSender

import (
	"context"
	"fmt"

	"contact_service/internal/models"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// Send dials the relay and delivers msg as plain text. gomail has no
// context support, so a cancelled ctx abandons the send rather than
// interrupting it.
func (m *Mailer) Send(ctx context.Context, msg models.EmailDispatch) error {
	const op = "mailSender.Send"

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(m.message(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

func (m *Mailer) message(msg models.EmailDispatch) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.Username, m.FromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)

	gm.SetBody("text/plain", msg.Body)

	return gm
}
