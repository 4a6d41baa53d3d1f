package services

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// WorkspaceAuthorizerSvc checks whether a user can act within a workspace.
// Every workspace-scoped service call passes through this before touching
// storage.
type WorkspaceAuthorizerSvc interface {
	// AuthorizeUserAction returns nil when userID holds at least requiredRole
	// in workspaceID, apperrors.ErrNotFound when the user is not a member
	// (membership is not revealed), and apperrors.ErrForbidden when the role
	// is insufficient.
	AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.UserWorkspaceRole) error
}

// WorkspaceSvcFacade defines workspace management operations.
type WorkspaceSvcFacade interface {
	WorkspaceAuthorizerSvc

	CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.Workspace, error)
	GetWorkspaceByID(ctx context.Context, workspaceID, requestingUserID string) (*domain.Workspace, error)
	ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error)
	AddUserToWorkspace(ctx context.Context, addingUserID, targetUserID, workspaceID string, role domain.UserWorkspaceRole) error
	ListWorkspaceMembers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.UserWorkspace, error)
}
