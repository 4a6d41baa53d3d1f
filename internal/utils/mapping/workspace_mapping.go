package mapping

import (
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/models"
)

// ToModelWorkspace converts a domain Workspace to a model Workspace
func ToModelWorkspace(d domain.Workspace) models.Workspace {
	return models.Workspace{
		WorkspaceID: d.WorkspaceID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkspace converts a model Workspace to a domain Workspace
func ToDomainWorkspace(m models.Workspace) domain.Workspace {
	return domain.Workspace{
		WorkspaceID: m.WorkspaceID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkspaceSlice converts a slice of model Workspaces
func ToDomainWorkspaceSlice(ms []models.Workspace) []domain.Workspace {
	ds := make([]domain.Workspace, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkspace(m)
	}
	return ds
}

// ToModelUserWorkspace converts a domain UserWorkspace to a model UserWorkspace
func ToModelUserWorkspace(d domain.UserWorkspace) models.UserWorkspace {
	return models.UserWorkspace{
		UserID:      d.UserID,
		UserName:    d.UserName,
		WorkspaceID: d.WorkspaceID,
		Role:        string(d.Role),
		JoinedAt:    d.JoinedAt,
	}
}

// ToDomainUserWorkspace converts a model UserWorkspace to a domain UserWorkspace
func ToDomainUserWorkspace(m models.UserWorkspace) domain.UserWorkspace {
	return domain.UserWorkspace{
		UserID:      m.UserID,
		UserName:    m.UserName,
		WorkspaceID: m.WorkspaceID,
		Role:        domain.UserWorkspaceRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}

// ToDomainUserWorkspaceSlice converts a slice of model UserWorkspaces
func ToDomainUserWorkspaceSlice(ms []models.UserWorkspace) []domain.UserWorkspace {
	ds := make([]domain.UserWorkspace, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUserWorkspace(m)
	}
	return ds
}
