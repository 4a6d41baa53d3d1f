package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// workspaceService handles business logic related to workspaces and memberships.
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(wr portsrepo.WorkspaceRepositoryFacade) portssvc.WorkspaceSvcFacade {
	return &workspaceService{workspaceRepo: wr}
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// CreateWorkspace creates a new workspace and makes the creator the initial admin.
func (s *workspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.Workspace, error) {
	now := time.Now().UTC()
	newWorkspaceID := uuid.NewString()

	workspace := domain.Workspace{
		WorkspaceID: newWorkspaceID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace in repository", slog.String("workspace_name", req.Name))
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	membership := domain.UserWorkspace{
		UserID:      creatorUserID,
		WorkspaceID: newWorkspaceID,
		Role:        domain.RoleAdmin, // Creator is Admin
		JoinedAt:    now,
	}
	if err := s.workspaceRepo.AddUserToWorkspace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add creator as admin to new workspace",
			slog.String("workspace_id", newWorkspaceID),
			slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to set up workspace membership: %w", err)
	}

	s.LogInfo(ctx, "Workspace created successfully",
		slog.String("workspace_id", newWorkspaceID),
		slog.String("creator_user_id", creatorUserID))
	return &workspace, nil
}

// GetWorkspaceByID retrieves a workspace the requesting user is a member of.
func (s *workspaceService) GetWorkspaceByID(ctx context.Context, workspaceID, requestingUserID string) (*domain.Workspace, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workspace by ID", slog.String("workspace_id", workspaceID))
		}
		return nil, err
	}
	return workspace, nil
}

// ListUserWorkspaces lists all workspaces the user belongs to.
func (s *workspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspacesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to retrieve workspaces: %w", err)
	}
	return workspaces, nil
}

// AddUserToWorkspace adds a user to a workspace with a specific role.
// Only admins may manage membership.
func (s *workspaceService) AddUserToWorkspace(ctx context.Context, addingUserID, targetUserID, workspaceID string, role domain.UserWorkspaceRole) error {
	if err := s.AuthorizeUserAction(ctx, addingUserID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	membership := domain.UserWorkspace{
		UserID:      targetUserID,
		WorkspaceID: workspaceID,
		Role:        role,
		JoinedAt:    time.Now().UTC(),
	}

	if err := s.workspaceRepo.AddUserToWorkspace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to workspace",
			slog.String("target_user_id", targetUserID),
			slog.String("workspace_id", workspaceID))
		return err
	}

	s.LogInfo(ctx, "User added to workspace successfully",
		slog.String("target_user_id", targetUserID),
		slog.String("workspace_id", workspaceID),
		slog.String("role", string(role)))
	return nil
}

// ListWorkspaceMembers lists memberships for a workspace.
func (s *workspaceService) ListWorkspaceMembers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.UserWorkspace, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	members, err := s.workspaceRepo.ListUsersInWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace members", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to retrieve members: %w", err)
	}
	return members, nil
}

// AuthorizeUserAction checks if a user has required permissions for a workspace.
func (s *workspaceService) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.UserWorkspaceRole) error {
	membership, err := s.workspaceRepo.FindUserWorkspaceRole(ctx, userID, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workspace",
				slog.String("user_id", userID),
				slog.String("workspace_id", workspaceID))
			// Membership is not revealed to non-members.
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find user workspace role",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID))
		return err
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}

// hasRequiredRole checks if the user's role meets or exceeds the required role.
func hasRequiredRole(userRole, requiredRole domain.UserWorkspaceRole) bool {
	switch requiredRole {
	case domain.RoleReadOnly:
		return userRole == domain.RoleReadOnly || userRole == domain.RoleMember || userRole == domain.RoleAdmin
	case domain.RoleMember:
		return userRole == domain.RoleMember || userRole == domain.RoleAdmin
	case domain.RoleAdmin:
		return userRole == domain.RoleAdmin
	default:
		return false
	}
}
