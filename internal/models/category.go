package models

// Category represents a row in the categories table.
type Category struct {
	CategoryID      string  `db:"category_id"`
	WorkspaceID     string  `db:"workspace_id"`
	Name            string  `db:"name"`
	DefaultBudgetID *string `db:"default_budget_id"` // Nullable
	IsActive        bool    `db:"is_active"`
	AuditFields
}
