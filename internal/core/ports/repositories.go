package ports

import (
	"context"

	"github.com/expensemaster/expense_master_app/internal/core/domain"
)

// CompanyRepository is the persistence port for the company aggregate.
// Implementations must make every embedded-array mutation atomic with
// respect to the rest of the document: the element identifier goes into
// the store filter and only the matched element is rewritten, so two
// concurrent updates to sibling elements cannot lose either write.
type CompanyRepository interface {
	// SaveCompany inserts a new company. Returns apperrors.ErrDuplicate
	// when the email is already taken.
	SaveCompany(ctx context.Context, company domain.Company) (string, error)
	FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error)
	FindCompanyByName(ctx context.Context, name string) (*domain.Company, error)
	FindCompanies(ctx context.Context) ([]domain.Company, error)
	DeleteCompany(ctx context.Context, companyID string) error

	// SetFinancials writes ledger[dateKey] and replaces the balance-sheet
	// snapshot wholesale in a single atomic update.
	SetFinancials(ctx context.Context, email string, dateKey string, entry domain.LedgerEntry, balance []domain.BalanceEntry) error
	// UpdateLedgerEntry rewrites an existing dated ledger entry. The filter
	// requires both the company and the dated entry to exist; it never
	// upserts a new date.
	UpdateLedgerEntry(ctx context.Context, companyID string, dateKey string, entry domain.LedgerEntry) error

	AppendEvent(ctx context.Context, email string, event domain.Event) error
	UpdateEvent(ctx context.Context, email string, event domain.Event) error
	RemoveEvent(ctx context.Context, email string, eventID string) error

	AppendBudget(ctx context.Context, email string, budget domain.Budget) error
	UpdateBudget(ctx context.Context, email string, budget domain.Budget) error
	RemoveBudget(ctx context.Context, email string, budgetID string) error

	// ClaimEventNotification stamps the event's lastNotifiedOn with dateKey
	// and reports whether this caller won the stamp. A false result means
	// another instance (or an earlier run today) already claimed it.
	ClaimEventNotification(ctx context.Context, companyID string, eventID string, dateKey string) (bool, error)
}

// UserRepository is the persistence port for the user directory.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate when the
	// email is already taken.
	SaveUser(ctx context.Context, user domain.User) (string, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
	FindUsersByCompanyName(ctx context.Context, companyName string) ([]domain.User, error)
	SetJoinRequest(ctx context.Context, email string, request domain.JoinRequest) error
	SetJoinStatus(ctx context.Context, userID string, status domain.JoinStatus) error
	SetRole(ctx context.Context, userID string, role domain.Role) error
	DeleteUser(ctx context.Context, userID string) error
}
