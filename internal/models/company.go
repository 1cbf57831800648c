package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BalanceEntry is one balance-sheet line as stored.
type BalanceEntry struct {
	Label  string  `bson:"label"`
	Amount float64 `bson:"amount"`
}

// LedgerEntry is one dated income/expense record as stored. The parent
// company holds these in a map keyed by "YYYY-MM-DD" so the date is a
// real key and duplicate dates cannot exist.
type LedgerEntry struct {
	Income  float64 `bson:"income"`
	Expense float64 `bson:"expense"`
}

// Event is an embedded calendar event. EventID is unique within the
// parent document and is the positional-match key for updates.
type Event struct {
	EventID        string    `bson:"eventId"`
	Title          string    `bson:"title"`
	Start          time.Time `bson:"start"`
	End            time.Time `bson:"end"`
	LastNotifiedOn string    `bson:"lastNotifiedOn,omitempty"`
}

// Budget is an embedded budget allocation, keyed by BudgetID.
type Budget struct {
	BudgetID           string    `bson:"budgetId"`
	Department         string    `bson:"department"`
	ProjectName        string    `bson:"projectName"`
	BudgetAmount       float64   `bson:"budgetAmount"`
	CurrentExpenditure float64   `bson:"currentExpenditure"`
	AlertThreshold     float64   `bson:"alertThreshold"`
	CreatedAt          time.Time `bson:"createdAt"`
}

// Company is the stored form of a company aggregate in the Company
// collection. Email carries a unique index.
type Company struct {
	ID           bson.ObjectID          `bson:"_id,omitempty"`
	Name         string                 `bson:"name"`
	Email        string                 `bson:"email"`
	BalanceSheet []BalanceEntry         `bson:"balanceSheet"`
	Ledger       map[string]LedgerEntry `bson:"ledger"`
	Events       []Event                `bson:"events"`
	Budgets      []Budget               `bson:"budgets"`
	CreatedAt    time.Time              `bson:"createdAt"`
}
