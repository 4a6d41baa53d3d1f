package domain

// Category groups expenses and may carry a default budget hint used when an
// expense is recorded without an explicit budget reference.
type Category struct {
	CategoryID      string  `json:"categoryID"`  // Primary Key (UUID)
	WorkspaceID     string  `json:"workspaceID"` // FK -> workspaces.workspace_id
	Name            string  `json:"name"`
	DefaultBudgetID *string `json:"defaultBudgetID,omitempty"` // Nullable FK -> budgets.budget_id
	IsActive        bool    `json:"isActive"`
	AuditFields
}
