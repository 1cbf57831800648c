package services

import (
	"log/slog"

	"github.com/expensemaster/expense_master_app/internal/adapters/database/mongodb"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/platform/config"
)

// NewServiceContainer creates a service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *mongodb.RepositoryProvider, mailer ports.Mailer, logger *slog.Logger) *ports.ServiceContainer {
	return &ports.ServiceContainer{
		Company:  NewCompanyService(repos.CompanyRepo),
		User:     NewUserService(repos.UserRepo, repos.CompanyRepo),
		Reminder: NewReminderService(repos.CompanyRepo, mailer, logger, cfg.DispatchTimeout),
	}
}
