package models

import "time"

// Workspace represents a tenant row in the workspaces table.
type Workspace struct {
	WorkspaceID string `db:"workspace_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// UserWorkspace represents a membership row in user_workspaces.
type UserWorkspace struct {
	UserID      string    `db:"user_id"`
	UserName    string    `db:"user_name"` // Joined from users, not a column of user_workspaces
	WorkspaceID string    `db:"workspace_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
