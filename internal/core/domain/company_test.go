package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/expensemaster/expense_master_app/internal/core/domain"
)

func TestBudgetOverspent(t *testing.T) {
	testCases := []struct {
		name        string
		expenditure float64
		threshold   float64
		overspent   bool
	}{
		{"below threshold", 500, 1000, false},
		{"exactly at threshold", 1000, 1000, false},
		{"above threshold", 1000.01, 1000, true},
		{"zero threshold with spending", 0.01, 0, true},
		{"no spending", 0, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := domain.Budget{CurrentExpenditure: tc.expenditure, AlertThreshold: tc.threshold}
			assert.Equal(t, tc.overspent, b.Overspent())
		})
	}
}

func TestLedgerDateLayout(t *testing.T) {
	ts := time.Date(2024, time.June, 3, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-06-03", ts.Format(domain.LedgerDateLayout))

	parsed, err := time.Parse(domain.LedgerDateLayout, "2024-06-03")
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())

	_, err = time.Parse(domain.LedgerDateLayout, "03-06-2024")
	assert.Error(t, err)
}
