// Package mail delivers email events over SMTP.
package mail

import (
	"context"
	"log/slog"
	"strings"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpMailer implements service.Mailer with github.com/wneessen/go-mail.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer builds a mailer from the smtp section of the configuration.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	smtpCfg := cfg.SMTP
	if smtpCfg == nil || smtpCfg.Host == "" {
		return nil, errors.New("smtp.host is required")
	}
	if smtpCfg.From == "" {
		return nil, errors.New("smtp.from is required")
	}

	opts := []gomail.Option{
		gomail.WithTLSPolicy(tlsPolicy(smtpCfg.TLSPolicy)),
	}
	if smtpCfg.Port > 0 {
		opts = append(opts, gomail.WithPort(smtpCfg.Port))
	}
	if smtpCfg.UserName != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(smtpCfg.UserName),
			gomail.WithPassword(smtpCfg.Password),
		)
	}

	client, err := gomail.NewClient(smtpCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{
		client: client,
		from:   smtpCfg.From,
		logger: logger,
	}, nil
}

// Send delivers one email. Each call opens its own SMTP session.
func (m *smtpMailer) Send(ctx context.Context, event *service.EmailEvent) error {
	msg, err := buildMessage(m.from, event)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	m.logger.DebugContext(ctx, "Email sent",
		slog.String("subject", event.Subject),
		slog.String("request_id", event.RequestID),
	)

	return nil
}

func buildMessage(from string, event *service.EmailEvent) (*gomail.Msg, error) {
	if event == nil || event.To == "" || event.Subject == "" || event.HTML == "" {
		return nil, errors.New("email event requires to, subject and html")
	}

	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid from address")
	}
	if err := msg.To(event.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(event.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, event.HTML)
	if event.RequestID != "" {
		msg.SetGenHeader("X-Request-Id", event.RequestID)
	}

	return msg, nil
}

func tlsPolicy(policy string) gomail.TLSPolicy {
	switch strings.ToLower(policy) {
	case "none":
		return gomail.NoTLS
	case "opportunistic":
		return gomail.TLSOpportunistic
	default:
		return gomail.TLSMandatory
	}
}
