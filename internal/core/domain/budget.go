package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod defines how often a budget target resets.
type BudgetPeriod string

const (
	PeriodMonthly   BudgetPeriod = "MONTHLY"
	PeriodQuarterly BudgetPeriod = "QUARTERLY"
	PeriodAnnual    BudgetPeriod = "ANNUAL"
)

// ValidPeriod reports whether p is a known budget period.
func ValidPeriod(p BudgetPeriod) bool {
	switch p {
	case PeriodMonthly, PeriodQuarterly, PeriodAnnual:
		return true
	}
	return false
}

// Budget is a named spending envelope scoped to a workspace. Budgets are
// soft-deleted: archiving flips IsActive and stamps ArchivedAt, but the
// record and all ledger history referencing it remain.
type Budget struct {
	BudgetID    string          `json:"budgetID"`    // Primary Key (UUID)
	WorkspaceID string          `json:"workspaceID"` // FK -> workspaces.workspace_id
	Name        string          `json:"name"`        // User-defined name
	Target      decimal.Decimal `json:"target"`      // Target amount per period, >= 0
	Period      BudgetPeriod    `json:"period"`      // MONTHLY, QUARTERLY or ANNUAL
	Color       string          `json:"color"`       // Display hint, free-form
	IsActive    bool            `json:"isActive"`    // False once archived
	ArchivedAt  *time.Time      `json:"archivedAt,omitempty"`
	AuditFields
}
