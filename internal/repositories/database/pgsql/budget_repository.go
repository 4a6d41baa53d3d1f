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

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetSelectQuery = `
	SELECT budget_id, workspace_id, name, target, period, color, is_active, archived_at,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM budgets
`

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var b models.Budget
	err := row.Scan(
		&b.BudgetID,
		&b.WorkspaceID,
		&b.Name,
		&b.Target,
		&b.Period,
		&b.Color,
		&b.IsActive,
		&b.ArchivedAt,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (
			budget_id, workspace_id, name, target, period, color, is_active, archived_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.WorkspaceID,
		modelBudget.Name,
		modelBudget.Target,
		modelBudget.Period,
		modelBudget.Color,
		modelBudget.IsActive,
		modelBudget.ArchivedAt,
		modelBudget.CreatedAt,
		modelBudget.CreatedBy,
		modelBudget.LastUpdatedAt,
		modelBudget.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewAppError(409, "budget ID "+budget.BudgetID+" already exists", apperrors.ErrDuplicate)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewAppError(400, "workspace does not exist", apperrors.ErrValidation)
			}
		}
		return apperrors.NewAppError(500, "failed to save budget "+budget.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, workspaceID, budgetID string) (*domain.Budget, error) {
	query := budgetSelectQuery + `WHERE workspace_id = $1 AND budget_id = $2;`
	modelBudget, err := scanBudget(r.Pool.QueryRow(ctx, query, workspaceID, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find budget by ID "+budgetID, err)
	}
	domainBudget := mapping.ToDomainBudget(*modelBudget)
	return &domainBudget, nil
}

func (r *PgxBudgetRepository) FindActiveBudget(ctx context.Context, workspaceID, budgetID string) (*domain.Budget, error) {
	query := budgetSelectQuery + `WHERE workspace_id = $1 AND budget_id = $2 AND is_active = true;`
	modelBudget, err := scanBudget(r.Pool.QueryRow(ctx, query, workspaceID, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Archived budgets are invisible here so writes against them fail
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find active budget by ID "+budgetID, err)
	}
	domainBudget := mapping.ToDomainBudget(*modelBudget)
	return &domainBudget, nil
}

func (r *PgxBudgetRepository) FindBudgetsByIDs(ctx context.Context, workspaceID string, budgetIDs []string) (map[string]domain.Budget, error) {
	if len(budgetIDs) == 0 {
		return map[string]domain.Budget{}, nil
	}
	query := budgetSelectQuery + `WHERE workspace_id = $1 AND budget_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, workspaceID, budgetIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budgets by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Budget, len(budgetIDs))
	for rows.Next() {
		modelBudget, err := scanBudget(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget row", err)
		}
		result[modelBudget.BudgetID] = mapping.ToDomainBudget(*modelBudget)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget rows", err)
	}
	return result, nil
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, workspaceID string, includeArchived bool) ([]domain.Budget, error) {
	query := budgetSelectQuery + `WHERE workspace_id = $1`
	if !includeArchived {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budgets for workspace "+workspaceID, err)
	}
	defer rows.Close()

	modelBudgets := []models.Budget{}
	for rows.Next() {
		modelBudget, err := scanBudget(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget row for workspace "+workspaceID, err)
		}
		modelBudgets = append(modelBudgets, *modelBudget)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget rows for workspace "+workspaceID, err)
	}

	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)
	query := `
		UPDATE budgets
		SET name = $3, target = $4, period = $5, color = $6, is_active = $7, archived_at = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE workspace_id = $1 AND budget_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelBudget.WorkspaceID,
		modelBudget.BudgetID,
		modelBudget.Name,
		modelBudget.Target,
		modelBudget.Period,
		modelBudget.Color,
		modelBudget.IsActive,
		modelBudget.ArchivedAt,
		modelBudget.LastUpdatedAt,
		modelBudget.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget "+budget.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
