package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a row in the budgets table.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	WorkspaceID string          `db:"workspace_id"`
	Name        string          `db:"name"`
	Target      decimal.Decimal `db:"target"`
	Period      string          `db:"period"`
	Color       string          `db:"color"`
	IsActive    bool            `db:"is_active"`
	ArchivedAt  *time.Time      `db:"archived_at"` // Nullable
	AuditFields
}
