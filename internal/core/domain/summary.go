package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetSummary is the point-in-time financial view of a single budget over
// a half-open window [From, To). All figures are derived by summation at
// read time; nothing here is ever stored.
type BudgetSummary struct {
	BudgetID string          `json:"budgetID"`
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Funded   decimal.Decimal `json:"funded"` // Net signed ledger activity in window
	Spent    decimal.Decimal `json:"spent"`  // Sum of expenses in window, >= 0
	// RemainingClassic is target minus spent, floored at zero.
	RemainingClassic decimal.Decimal `json:"remainingClassic"`
	// EnvelopeRemaining is funded minus spent; negative means overspend.
	EnvelopeRemaining decimal.Decimal `json:"envelopeRemaining"`
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
}

// BudgetActivity is the raw aggregation row a summary is built from.
type BudgetActivity struct {
	BudgetID string
	Funded   decimal.Decimal
	Spent    decimal.Decimal
}

// WorkspaceSummary aggregates every budget in a workspace over one window.
type WorkspaceSummary struct {
	WorkspaceID string          `json:"workspaceID"`
	Budgets     []BudgetSummary `json:"budgets"`
	TotalFunded decimal.Decimal `json:"totalFunded"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
}
