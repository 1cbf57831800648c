package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expensemaster/expense_master_app/internal/apperrors"
	"github.com/expensemaster/expense_master_app/internal/core/domain"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/dto"
)

// companyService owns the company aggregate: the document itself plus its
// embedded ledger, events and budgets.
type companyService struct {
	companyRepo ports.CompanyRepository
	now         func() time.Time
}

// NewCompanyService creates the company aggregate service.
func NewCompanyService(companyRepo ports.CompanyRepository) ports.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

var _ ports.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	company := domain.Company{
		Name:         req.Name,
		Email:        req.Email,
		BalanceSheet: []domain.BalanceEntry{},
		Ledger:       map[string]domain.LedgerEntry{},
		Events:       []domain.Event{},
		Budgets:      []domain.Budget{},
		CreatedAt:    s.now(),
	}

	companyID, err := s.companyRepo.SaveCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	company.CompanyID = companyID
	return &company, nil
}

func (s *companyService) GetCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get company by email: %w", err)
	}
	return company, nil
}

func (s *companyService) GetCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get company by name: %w", err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.FindCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, companyID string) error {
	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

// SetFinancialSnapshot records today's ledger entry and replaces the
// balance-sheet snapshot. The date key is always computed here, in the
// server's local calendar; callers cannot backdate through this path.
func (s *companyService) SetFinancialSnapshot(ctx context.Context, email string, req dto.FinancialSnapshotRequest) (string, error) {
	dateKey := s.now().Format(domain.LedgerDateLayout)

	balance := make([]domain.BalanceEntry, len(req.BalanceSheet))
	for i, b := range req.BalanceSheet {
		balance[i] = domain.BalanceEntry{Label: b.Label, Amount: b.Amount}
	}

	entry := domain.LedgerEntry{Income: req.Income, Expense: req.Expense}
	if err := s.companyRepo.SetFinancials(ctx, email, dateKey, entry, balance); err != nil {
		return "", fmt.Errorf("failed to set financial snapshot: %w", err)
	}
	return dateKey, nil
}

func (s *companyService) UpdateLedgerEntry(ctx context.Context, companyID string, date string, req dto.UpdateLedgerEntryRequest) error {
	if _, err := time.Parse(domain.LedgerDateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be formatted as %s", apperrors.ErrValidation, domain.LedgerDateLayout)
	}

	entry := domain.LedgerEntry{Income: req.Income, Expense: req.Expense}
	if err := s.companyRepo.UpdateLedgerEntry(ctx, companyID, date, entry); err != nil {
		return fmt.Errorf("failed to update ledger entry: %w", err)
	}
	return nil
}

func validateEventFields(req dto.EventRequest) error {
	if req.Title == "" || req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: title, start and end are required", apperrors.ErrValidation)
	}
	return nil
}

func (s *companyService) AddEvent(ctx context.Context, email string, req dto.EventRequest) (*domain.Event, error) {
	if err := validateEventFields(req); err != nil {
		return nil, err
	}

	event := domain.Event{
		EventID: uuid.NewString(),
		Title:   req.Title,
		Start:   req.Start,
		End:     req.End,
	}

	if err := s.companyRepo.AppendEvent(ctx, email, event); err != nil {
		return nil, fmt.Errorf("failed to add event: %w", err)
	}
	return &event, nil
}

func (s *companyService) ListEvents(ctx context.Context, email string) ([]domain.Event, error) {
	company, err := s.companyRepo.FindCompanyByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return company.Events, nil
}

func (s *companyService) UpdateEvent(ctx context.Context, email string, eventID string, req dto.EventRequest) (*domain.Event, error) {
	if err := validateEventFields(req); err != nil {
		return nil, err
	}

	event := domain.Event{
		EventID: eventID,
		Title:   req.Title,
		Start:   req.Start,
		End:     req.End,
	}

	if err := s.companyRepo.UpdateEvent(ctx, email, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &event, nil
}

func (s *companyService) DeleteEvent(ctx context.Context, email string, eventID string) error {
	if err := s.companyRepo.RemoveEvent(ctx, email, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (s *companyService) AddBudget(ctx context.Context, email string, req dto.BudgetRequest) (*domain.Budget, error) {
	budget := domain.Budget{
		BudgetID:           uuid.NewString(),
		Department:         req.Department,
		ProjectName:        req.ProjectName,
		BudgetAmount:       req.BudgetAmount,
		CurrentExpenditure: req.CurrentExpenditure,
		AlertThreshold:     req.AlertThreshold,
		CreatedAt:          s.now(),
	}

	if err := s.companyRepo.AppendBudget(ctx, email, budget); err != nil {
		return nil, fmt.Errorf("failed to add budget: %w", err)
	}
	return &budget, nil
}

func (s *companyService) ListBudgets(ctx context.Context, email string) ([]domain.Budget, error) {
	company, err := s.companyRepo.FindCompanyByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return company.Budgets, nil
}

func (s *companyService) UpdateBudget(ctx context.Context, email string, budgetID string, req dto.BudgetRequest) (*domain.Budget, error) {
	budget := domain.Budget{
		BudgetID:           budgetID,
		Department:         req.Department,
		ProjectName:        req.ProjectName,
		BudgetAmount:       req.BudgetAmount,
		CurrentExpenditure: req.CurrentExpenditure,
		AlertThreshold:     req.AlertThreshold,
	}

	if err := s.companyRepo.UpdateBudget(ctx, email, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return &budget, nil
}

func (s *companyService) DeleteBudget(ctx context.Context, email string, budgetID string) error {
	if err := s.companyRepo.RemoveBudget(ctx, email, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

func (s *companyService) CheckOverspend(ctx context.Context, email string, budgetID string) (*domain.Budget, bool, error) {
	company, err := s.companyRepo.FindCompanyByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check overspend: %w", err)
	}

	for i := range company.Budgets {
		if company.Budgets[i].BudgetID == budgetID {
			budget := company.Budgets[i]
			return &budget, budget.Overspent(), nil
		}
	}
	return nil, false, fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
}
