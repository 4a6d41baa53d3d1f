package repositories

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// WorkspaceRepositoryFacade defines persistence operations for workspaces
// and their memberships.
type WorkspaceRepositoryFacade interface {
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)
	ListWorkspacesByUser(ctx context.Context, userID string) ([]domain.Workspace, error)
	AddUserToWorkspace(ctx context.Context, membership domain.UserWorkspace) error
	FindUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*domain.UserWorkspace, error)
	ListUsersInWorkspace(ctx context.Context, workspaceID string) ([]domain.UserWorkspace, error)
}
