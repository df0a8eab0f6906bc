package mailer

import (
	"context"
	"fmt"

	"github.com/riftbikes/rift_storefront/internal/config"
	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/wneessen/go-mail"
)

// Mailer e-mails order summaries to the distributor over SMTP.
type Mailer struct {
	from    string
	to      string
	options []mail.Option
	host    string
}

func NewMailer(cfg *config.SMTP, to string) *Mailer {
	options := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	return &Mailer{
		from:    cfg.From,
		to:      to,
		options: options,
		host:    cfg.Host,
	}
}

func (m *Mailer) Send(ctx context.Context, summary domain.NotificationSummary) error {
	msg, err := m.message(summary)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.host, m.options...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", m.to, err)
	}
	return nil
}

func (m *Mailer) message(summary domain.NotificationSummary) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := msg.To(m.to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", m.to, err)
	}
	msg.Subject(summary.Subject)
	msg.SetBodyString(mail.TypeTextPlain, summary.Body)
	return msg, nil
}
