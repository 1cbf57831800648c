package domain

import "time"

// LedgerDateLayout is the key format for the company ledger map.
// The ledger is keyed by calendar date, one entry per date.
const LedgerDateLayout = "2006-01-02"

// BalanceEntry is one line of the company balance-sheet snapshot
// (Assets, Liabilities, Equity, optionally Expected Income).
type BalanceEntry struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// LedgerEntry holds the recorded income and expense for a single date.
type LedgerEntry struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Event is a calendar event embedded in a company document.
type Event struct {
	EventID string    `json:"eventID"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	// LastNotifiedOn is the calendar date (LedgerDateLayout) of the last
	// reminder sent for this event. Empty until the first reminder.
	LastNotifiedOn string `json:"lastNotifiedOn,omitempty"`
}

// Budget is a tracked spending allocation embedded in a company document.
type Budget struct {
	BudgetID           string    `json:"budgetID"`
	Department         string    `json:"department"`
	ProjectName        string    `json:"projectName"`
	BudgetAmount       float64   `json:"budgetAmount"`
	CurrentExpenditure float64   `json:"currentExpenditure"`
	AlertThreshold     float64   `json:"alertThreshold"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Overspent reports whether the budget has crossed its alert threshold.
// Spending exactly up to the threshold is not overspending.
func (b Budget) Overspent() bool {
	return b.CurrentExpenditure > b.AlertThreshold
}

// Company is the aggregate record for one business tenant. It embeds the
// ledger, calendar events and budgets; embedded elements have no identity
// outside their parent company.
type Company struct {
	CompanyID    string                 `json:"companyID"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	BalanceSheet []BalanceEntry         `json:"balanceSheet"`
	Ledger       map[string]LedgerEntry `json:"ledger"`
	Events       []Event                `json:"events"`
	Budgets      []Budget               `json:"budgets"`
	CreatedAt    time.Time              `json:"createdAt"`
}
