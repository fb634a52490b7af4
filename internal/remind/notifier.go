package remind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Notifier delivers a digest to the owner.
type Notifier interface {
	Notify(ctx context.Context, d Digest) error
}

// LogNotifier writes the digest to the default logger.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, d Digest) error {
	slog.Info("Reminder digest",
		"date", d.Date,
		"active_loans", len(d.ActiveLoans),
		"monthly_emi", d.MonthlyEMI,
		"unsettled_splits", len(d.UnsettledSplits),
		"due_debts", len(d.DueDebts),
		"pending_shopping", len(d.PendingShopping),
	)
	return nil
}

// EmailNotifier mails the digest over SMTP.
type EmailNotifier struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	send func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewEmailNotifier creates a notifier sending through the SMTP server at
// addr ("host:port"). Without a username no authentication is attempted.
func NewEmailNotifier(addr, username, password, from string, to ...string) *EmailNotifier {
	var auth smtp.Auth
	if username != "" {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &EmailNotifier{
		addr: addr,
		auth: auth,
		from: from,
		to:   to,
		send: func(e *email.Email, addr string, auth smtp.Auth) error { return e.Send(addr, auth) },
	}
}

func (n *EmailNotifier) Notify(_ context.Context, d Digest) error {
	e := email.NewEmail()
	e.From = n.from
	e.To = n.to
	e.Subject = d.Subject()
	e.Text = []byte(d.Text())

	if err := n.send(e, n.addr, n.auth); err != nil {
		slog.Error("Failed to send reminder email", "to", n.to, "error", err)
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	slog.Info("Reminder email sent", "to", n.to, "subject", e.Subject)
	return nil
}

// Multi fans a digest out to several notifiers and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, d Digest) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
