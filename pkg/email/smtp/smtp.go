package smtp

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gomail/gomail"

	"github.com/debate-hall/backend/pkg/email"
)

// SMTPSender delivers mail through a single SMTP relay. Delivery is
// synchronous; the caller sees the relay error.
type SMTPSender struct {
	from        string
	pass        string
	host        string
	port        int
	sendTimeout time.Duration
}

var ErrSendTimeout = errors.New("smtp send timed out")

func NewSMTPSender(from, pass, host string, port int, sendTimeout time.Duration) (*SMTPSender, error) {
	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}

	if sendTimeout <= 0 {
		return nil, errors.New("non-positive send timeout")
	}

	return &SMTPSender{
		from:        from,
		pass:        pass,
		host:        host,
		port:        port,
		sendTimeout: sendTimeout,
	}, nil
}

// Send dials the relay and pushes one message. A stalled relay is cut
// off after the configured timeout and reported as a delivery error.
func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", input.To)
	msg.SetHeader("Subject", input.Subject)
	msg.SetBody("text/html", input.Body)

	dialer := gomail.NewDialer(s.host, s.port, s.from, s.pass)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email via smtp: %w", err)
		}
		return nil
	case <-time.After(s.sendTimeout):
		return ErrSendTimeout
	}
}
