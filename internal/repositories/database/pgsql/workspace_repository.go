package pgsql

import (
	"context"
	"errors"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	"github.com/KayaDyLux/ExpenseManager/internal/models"
	"github.com/KayaDyLux/ExpenseManager/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkspaceRepository implements portsrepo.WorkspaceRepositoryFacade
var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceSelectQuery = `
	SELECT w.workspace_id, w.name, w.description, w.is_active,
	       w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
	FROM workspaces w
`

// getWorkspaces runs the shared select with the given filter and collects rows.
func (r *PgxWorkspaceRepository) getWorkspaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workspace, error) {
	query := workspaceSelectQuery + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspaces", err)
	}
	defer rows.Close()

	modelWorkspaces := []models.Workspace{}
	for rows.Next() {
		var w models.Workspace
		err := rows.Scan(
			&w.WorkspaceID,
			&w.Name,
			&w.Description,
			&w.IsActive,
			&w.CreatedAt,
			&w.CreatedBy,
			&w.LastUpdatedAt,
			&w.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan workspace row", err)
		}
		modelWorkspaces = append(modelWorkspaces, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating workspace rows", err)
	}

	return mapping.ToDomainWorkspaceSlice(modelWorkspaces), nil
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	modelWorkspace := mapping.ToModelWorkspace(workspace)
	query := `
		INSERT INTO workspaces (
			workspace_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelWorkspace.WorkspaceID,
		modelWorkspace.Name,
		modelWorkspace.Description,
		modelWorkspace.IsActive,
		modelWorkspace.CreatedAt,
		modelWorkspace.CreatedBy,
		modelWorkspace.LastUpdatedAt,
		modelWorkspace.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewAppError(409, "workspace ID "+workspace.WorkspaceID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save workspace "+workspace.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	query := `WHERE w.workspace_id = $1`
	workspaces, err := r.getWorkspaces(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workspaces[0], nil
}

func (r *PgxWorkspaceRepository) ListWorkspacesByUser(ctx context.Context, userID string) ([]domain.Workspace, error) {
	query := `
		JOIN user_workspaces uw ON w.workspace_id = uw.workspace_id
		WHERE uw.user_id = $1 AND uw.role != $2 AND w.is_active = true
		ORDER BY w.created_at;
	`
	return r.getWorkspaces(ctx, query, userID, domain.RoleRemoved)
}

func (r *PgxWorkspaceRepository) AddUserToWorkspace(ctx context.Context, membership domain.UserWorkspace) error {
	query := `
		INSERT INTO user_workspaces (user_id, workspace_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, workspace_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: add user or update their role if they already exist
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.WorkspaceID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in workspace "+membership.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*domain.UserWorkspace, error) {
	query := `
		SELECT user_id, workspace_id, role, joined_at
		FROM user_workspaces
		WHERE user_id = $1 AND workspace_id = $2;
	`
	var uw domain.UserWorkspace
	err := r.Pool.QueryRow(ctx, query, userID, workspaceID).Scan(
		&uw.UserID,
		&uw.WorkspaceID,
		&uw.Role,
		&uw.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// User not found within this specific workspace
			return nil, apperrors.NewNotFoundError("workspace not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" workspace role in "+workspaceID, err)
	}
	return &uw, nil
}

func (r *PgxWorkspaceRepository) ListUsersInWorkspace(ctx context.Context, workspaceID string) ([]domain.UserWorkspace, error) {
	query := `
		SELECT uw.user_id, u.name AS user_name, uw.workspace_id, uw.role, uw.joined_at
		FROM user_workspaces uw
		JOIN users u ON uw.user_id = u.user_id
		WHERE uw.workspace_id = $1 AND uw.role != $2
		ORDER BY uw.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID, domain.RoleRemoved)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users in workspace "+workspaceID, err)
	}
	defer rows.Close()

	memberships := []models.UserWorkspace{}
	for rows.Next() {
		var m models.UserWorkspace
		err := rows.Scan(
			&m.UserID,
			&m.UserName,
			&m.WorkspaceID,
			&m.Role,
			&m.JoinedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan membership row for workspace "+workspaceID, err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating membership rows for workspace "+workspaceID, err)
	}

	return mapping.ToDomainUserWorkspaceSlice(memberships), nil
}
