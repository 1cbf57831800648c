package mailer

import (
	"context"
	"log/slog"

	"github.com/expensemaster/expense_master_app/internal/core/ports"
)

// LogMailer logs outbound mail instead of sending it. Used when no mail
// API key is configured, so reminder runs stay observable in development.
type LogMailer struct {
	logger *slog.Logger
}

var _ ports.Mailer = (*LogMailer)(nil)

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, to string, subject string, body string) error {
	m.logger.Info("Mail dispatch (log only)",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(body)),
	)
	return nil
}
