// Package mailer delivers login confirmation emails through an SMTPS relay.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"trackit-be/internal/config"
	"trackit-be/internal/entities"
)

const (
	ConfirmationSubject = "Login Confirmation"
	ConfirmationBody    = "You have successfully logged in to Trackit. If this wasn't you, please contact your administrator."
)

var ErrNotConfigured = errors.New("mail relay credentials not configured")

// Mailer sends the login confirmation to a single recipient.
type Mailer interface {
	SendConfirmation(ctx context.Context, to string) error
}

// Sender delivers one message per call over a fresh relay connection.
type Sender struct {
	cfg     config.MailConfig
	logger  *zap.Logger
	deliver func(ctx context.Context, msg *mail.Msg) error
}

func NewSender(cfg config.MailConfig, logger *zap.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger.Named("mailer"),
	}
	s.deliver = s.dialAndSend
	return s
}

// SendConfirmation connects, authenticates, sends and disconnects. Failures are
// logged here and returned to the caller.
func (s *Sender) SendConfirmation(ctx context.Context, to string) error {
	if !s.cfg.Configured() {
		s.logger.Error("email not sent", zap.String("to", to), zap.Error(ErrNotConfigured))
		return ErrNotConfigured
	}

	msg, err := buildMessage(s.Confirmation(to))
	if err != nil {
		s.logger.Error("failed to build email", zap.String("to", to), zap.Error(err))
		return err
	}

	if err := s.deliver(ctx, msg); err != nil {
		s.logger.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent", zap.String("to", to))
	return nil
}

// Confirmation returns the fixed login confirmation addressed to to.
func (s *Sender) Confirmation(to string) entities.EmailMessage {
	return entities.EmailMessage{
		Subject: ConfirmationSubject,
		Body:    ConfirmationBody,
		From:    s.cfg.From,
		To:      to,
	}
}

func buildMessage(em entities.EmailMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(em.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(em.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(em.Subject)
	msg.SetBodyString(mail.TypeTextPlain, em.Body)
	return msg, nil
}

func (s *Sender) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
