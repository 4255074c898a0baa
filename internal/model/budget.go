package model

import "time"

// EntryType distinguishes income from expense entries.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// BudgetEntry is a single income or expense record.
type BudgetEntry struct {
	ID          string    // UUID
	Description string    // Free text, e.g. "coffee"
	Amount      float64   // Always non-negative; Type carries the direction
	Category    string    // Food, Transport, Entertainment, Utilities, Healthcare, Other
	Type        EntryType // income or expense
	Date        string    // "2006-01-02"
	CreatedAt   time.Time // Set by the store
}

// BudgetSummary aggregates one month of budget entries.
type BudgetSummary struct {
	TotalIncome       float64
	TotalExpenses     float64
	Balance           float64
	ExpenseCategories map[string]float64
}
