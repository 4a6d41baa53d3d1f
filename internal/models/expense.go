package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row in the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	WorkspaceID string          `db:"workspace_id"`
	BudgetID    *string         `db:"budget_id"`   // Nullable
	CategoryID  *string         `db:"category_id"` // Nullable
	Amount      decimal.Decimal `db:"amount"`
	ExpenseDate time.Time       `db:"expense_date"`
	Description string          `db:"description"`
	AuditFields
}
