package dto

import (
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// CreateWorkspaceRequest defines the payload for creating a workspace.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddUserToWorkspaceRequest defines the payload for adding a member.
type AddUserToWorkspaceRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// WorkspaceResponse defines the data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID string    `json:"workspaceID"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListWorkspacesResponse wraps a workspace listing.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// WorkspaceMemberResponse defines the data returned for a membership.
type WorkspaceMemberResponse struct {
	UserID   string    `json:"userID"`
	UserName string    `json:"userName,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ToWorkspaceResponse converts a domain.Workspace to its response DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID: w.WorkspaceID,
		Name:        w.Name,
		Description: w.Description,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
	}
}

// ToWorkspaceResponses converts a slice of domain workspaces.
func ToWorkspaceResponses(workspaces []domain.Workspace) []WorkspaceResponse {
	responses := make([]WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		responses[i] = ToWorkspaceResponse(&workspaces[i])
	}
	return responses
}

// ToWorkspaceMemberResponses converts membership records.
func ToWorkspaceMemberResponses(members []domain.UserWorkspace) []WorkspaceMemberResponse {
	responses := make([]WorkspaceMemberResponse, len(members))
	for i, m := range members {
		responses[i] = WorkspaceMemberResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		}
	}
	return responses
}
