package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend record. It optionally points at a budget (direct
// or resolved from the category's default) and counts against that budget's
// remaining balance. Expenses are created once and never mutated.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`   // Primary Key (UUID)
	WorkspaceID string          `json:"workspaceID"` // FK -> workspaces.workspace_id
	BudgetID    *string         `json:"budgetID,omitempty"`   // Nullable FK -> budgets.budget_id
	CategoryID  *string         `json:"categoryID,omitempty"` // Nullable FK -> categories.category_id
	Amount      decimal.Decimal `json:"amount"`      // Always >= 0
	ExpenseDate time.Time       `json:"expenseDate"` // When the money was spent
	Description string          `json:"description"`
	AuditFields
}
