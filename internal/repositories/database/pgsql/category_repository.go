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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categorySelectQuery = `
	SELECT category_id, workspace_id, name, default_budget_id, is_active,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM categories
`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.CategoryID,
		&c.WorkspaceID,
		&c.Name,
		&c.DefaultBudgetID,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (
			category_id, workspace_id, name, default_budget_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.WorkspaceID,
		modelCategory.Name,
		modelCategory.DefaultBudgetID,
		modelCategory.IsActive,
		modelCategory.CreatedAt,
		modelCategory.CreatedBy,
		modelCategory.LastUpdatedAt,
		modelCategory.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewAppError(409, "category ID "+category.CategoryID+" already exists", apperrors.ErrDuplicate)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewAppError(400, "default budget does not exist", apperrors.ErrValidation)
			}
		}
		return apperrors.NewAppError(500, "failed to save category "+category.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.Category, error) {
	query := categorySelectQuery + `WHERE workspace_id = $1 AND category_id = $2;`
	modelCategory, err := scanCategory(r.Pool.QueryRow(ctx, query, workspaceID, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category by ID "+categoryID, err)
	}
	domainCategory := mapping.ToDomainCategory(*modelCategory)
	return &domainCategory, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, workspaceID string, includeArchived bool) ([]domain.Category, error) {
	query := categorySelectQuery + `WHERE workspace_id = $1`
	if !includeArchived {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories for workspace "+workspaceID, err)
	}
	defer rows.Close()

	modelCategories := []models.Category{}
	for rows.Next() {
		modelCategory, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row for workspace "+workspaceID, err)
		}
		modelCategories = append(modelCategories, *modelCategory)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows for workspace "+workspaceID, err)
	}

	return mapping.ToDomainCategorySlice(modelCategories), nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET name = $3, default_budget_id = $4, is_active = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE workspace_id = $1 AND category_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelCategory.WorkspaceID,
		modelCategory.CategoryID,
		modelCategory.Name,
		modelCategory.DefaultBudgetID,
		modelCategory.IsActive,
		modelCategory.LastUpdatedAt,
		modelCategory.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category "+category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
