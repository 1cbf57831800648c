package ports

import (
	"context"

	"github.com/expensemaster/expense_master_app/internal/core/domain"
	"github.com/expensemaster/expense_master_app/internal/dto"
)

// CompanySvcFacade exposes the company aggregate operations to the
// transport layer.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	GetCompanyByEmail(ctx context.Context, email string) (*domain.Company, error)
	GetCompanyByName(ctx context.Context, name string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	DeleteCompany(ctx context.Context, companyID string) error

	SetFinancialSnapshot(ctx context.Context, email string, req dto.FinancialSnapshotRequest) (string, error)
	UpdateLedgerEntry(ctx context.Context, companyID string, date string, req dto.UpdateLedgerEntryRequest) error

	AddEvent(ctx context.Context, email string, req dto.EventRequest) (*domain.Event, error)
	ListEvents(ctx context.Context, email string) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, email string, eventID string, req dto.EventRequest) (*domain.Event, error)
	DeleteEvent(ctx context.Context, email string, eventID string) error

	AddBudget(ctx context.Context, email string, req dto.BudgetRequest) (*domain.Budget, error)
	ListBudgets(ctx context.Context, email string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, email string, budgetID string, req dto.BudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, email string, budgetID string) error
	CheckOverspend(ctx context.Context, email string, budgetID string) (*domain.Budget, bool, error)
}

// UserSvcFacade exposes the user directory operations to the transport
// layer.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersByCompanyName(ctx context.Context, companyName string) ([]domain.User, error)
	RequestJoin(ctx context.Context, email string, companyName string) error
	ApproveUser(ctx context.Context, userID string) error
	RejectUser(ctx context.Context, userID string) error
	SetAdmin(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error
	ClassifyEmail(ctx context.Context, email string) (domain.OwnerKind, error)
}

// ReminderSvc runs the daily event reminder scan.
type ReminderSvc interface {
	RunOnce(ctx context.Context) error
}

// Mailer dispatches outbound notification messages.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

// ServiceContainer holds instances of all application services; it is the
// entry point the handlers are wired against.
type ServiceContainer struct {
	Company  CompanySvcFacade
	User     UserSvcFacade
	Reminder ReminderSvc
}
