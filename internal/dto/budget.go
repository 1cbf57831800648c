package dto

import (
	"time"

	"github.com/expensemaster/expense_master_app/internal/core/domain"
)

// BudgetRequest carries the writable fields of a budget allocation.
type BudgetRequest struct {
	Department         string  `json:"department" binding:"required"`
	ProjectName        string  `json:"projectName" binding:"required"`
	BudgetAmount       float64 `json:"budgetAmount"`
	CurrentExpenditure float64 `json:"currentExpenditure"`
	AlertThreshold     float64 `json:"alertThreshold"`
}

// BudgetResponse is the outward form of an embedded budget.
type BudgetResponse struct {
	BudgetID           string    `json:"budgetID"`
	Department         string    `json:"department"`
	ProjectName        string    `json:"projectName"`
	BudgetAmount       float64   `json:"budgetAmount"`
	CurrentExpenditure float64   `json:"currentExpenditure"`
	AlertThreshold     float64   `json:"alertThreshold"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToBudgetResponse converts a domain.Budget into its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:           b.BudgetID,
		Department:         b.Department,
		ProjectName:        b.ProjectName,
		BudgetAmount:       b.BudgetAmount,
		CurrentExpenditure: b.CurrentExpenditure,
		AlertThreshold:     b.AlertThreshold,
		CreatedAt:          b.CreatedAt,
	}
}

// ListBudgetsResponse wraps a company's budget listing.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToListBudgetsResponse converts a slice of budgets.
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Budgets: out}
}

// OverspendResponse reports the overspend check for one budget.
type OverspendResponse struct {
	Budget    BudgetResponse `json:"budget"`
	Overspent bool           `json:"overspent"`
}
