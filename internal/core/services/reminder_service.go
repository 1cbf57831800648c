package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/expensemaster/expense_master_app/internal/core/domain"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
)

// reminderService scans all companies' embedded events once per run and
// dispatches a reminder for every event starting today. Each event is
// claimed with a persisted lastNotifiedOn stamp before dispatch, so a run
// is idempotent across restarts and concurrent instances: the stamp filter
// lets exactly one caller win a given event on a given day.
type reminderService struct {
	companyRepo     ports.CompanyRepository
	mailer          ports.Mailer
	logger          *slog.Logger
	dispatchTimeout time.Duration
	now             func() time.Time
}

// NewReminderService creates the daily event reminder service.
func NewReminderService(companyRepo ports.CompanyRepository, mailer ports.Mailer, logger *slog.Logger, dispatchTimeout time.Duration) ports.ReminderSvc {
	return &reminderService{
		companyRepo:     companyRepo,
		mailer:          mailer,
		logger:          logger,
		dispatchTimeout: dispatchTimeout,
		now:             time.Now,
	}
}

var _ ports.ReminderSvc = (*reminderService)(nil)

// RunOnce performs one reminder scan. A store enumeration failure aborts
// the run; per-event claim or dispatch failures are logged and the scan
// continues, so one broken event never blocks the rest.
func (s *reminderService) RunOnce(ctx context.Context) error {
	today := s.now().Format(domain.LedgerDateLayout)
	logger := s.logger.With(slog.String("date", today))

	companies, err := s.companyRepo.FindCompanies(ctx)
	if err != nil {
		return fmt.Errorf("reminder scan failed to enumerate companies: %w", err)
	}

	var matched, sent int
	for _, company := range companies {
		for _, event := range company.Events {
			if event.Start.Local().Format(domain.LedgerDateLayout) != today {
				continue
			}
			matched++

			claimed, err := s.companyRepo.ClaimEventNotification(ctx, company.CompanyID, event.EventID, today)
			if err != nil {
				logger.Error("Failed to claim event notification",
					slog.String("company_email", company.Email),
					slog.String("event_id", event.EventID),
					slog.String("error", err.Error()))
				continue
			}
			if !claimed {
				// Already notified today, by this instance or another.
				continue
			}

			if err := s.dispatch(ctx, company, event); err != nil {
				logger.Error("Failed to dispatch event reminder",
					slog.String("company_email", company.Email),
					slog.String("event_id", event.EventID),
					slog.String("error", err.Error()))
				continue
			}
			sent++
		}
	}

	logger.Info("Reminder scan completed",
		slog.Int("companies", len(companies)),
		slog.Int("events_due", matched),
		slog.Int("reminders_sent", sent))
	return nil
}

func (s *reminderService) dispatch(ctx context.Context, company domain.Company, event domain.Event) error {
	dispatchCtx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
	defer cancel()

	subject := fmt.Sprintf("Reminder: %s is today", event.Title)
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your event <strong>%s</strong> is scheduled for today (%s).</p>",
		company.Name, event.Title, event.Start.Local().Format("Jan 2, 2006 15:04"),
	)
	return s.mailer.Send(dispatchCtx, company.Email, subject, body)
}
