package dto

import (
	"github.com/expensemaster/expense_master_app/internal/core/domain"
)

// CreateCompanyRequest carries the fields needed to register a company.
type CreateCompanyRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// BalanceEntryPayload is one balance-sheet line in a snapshot request.
type BalanceEntryPayload struct {
	Label  string  `json:"label" binding:"required"`
	Amount float64 `json:"amount"`
}

// FinancialSnapshotRequest appends today's ledger entry and replaces the
// balance-sheet snapshot wholesale. The entry date is always computed
// server-side; callers cannot backdate through this path.
type FinancialSnapshotRequest struct {
	Income       float64               `json:"income"`
	Expense      float64               `json:"expense"`
	BalanceSheet []BalanceEntryPayload `json:"balanceSheet" binding:"required,dive"`
}

// UpdateLedgerEntryRequest rewrites the income/expense of an existing
// dated ledger entry.
type UpdateLedgerEntryRequest struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CompanyResponse is the outward form of a company aggregate.
type CompanyResponse struct {
	CompanyID    string                        `json:"companyID"`
	Name         string                        `json:"name"`
	Email        string                        `json:"email"`
	BalanceSheet []domain.BalanceEntry         `json:"balanceSheet"`
	Ledger       map[string]domain.LedgerEntry `json:"ledger"`
	Events       []domain.Event                `json:"events"`
	Budgets      []domain.Budget               `json:"budgets"`
}

// ToCompanyResponse converts a domain.Company into its response DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		Email:        c.Email,
		BalanceSheet: c.BalanceSheet,
		Ledger:       c.Ledger,
		Events:       c.Events,
		Budgets:      c.Budgets,
	}
}

// ListCompaniesResponse wraps the company listing.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of companies.
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return ListCompaniesResponse{Companies: out}
}

// ClassifyEmailResponse reports which document type owns an email.
type ClassifyEmailResponse struct {
	Email string `json:"email"`
	Kind  string `json:"kind"`
}
