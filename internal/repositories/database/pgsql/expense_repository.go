package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	"github.com/KayaDyLux/ExpenseManager/internal/models"
	"github.com/KayaDyLux/ExpenseManager/internal/utils/mapping"
	"github.com/KayaDyLux/ExpenseManager/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseSelectQuery = `
	SELECT expense_id, workspace_id, budget_id, category_id, amount, expense_date, description,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM expenses
`

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.WorkspaceID,
		&e.BudgetID,
		&e.CategoryID,
		&e.Amount,
		&e.ExpenseDate,
		&e.Description,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (
			expense_id, workspace_id, budget_id, category_id, amount, expense_date, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.WorkspaceID,
		modelExpense.BudgetID,
		modelExpense.CategoryID,
		modelExpense.Amount,
		modelExpense.ExpenseDate,
		modelExpense.Description,
		modelExpense.CreatedAt,
		modelExpense.CreatedBy,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewAppError(400, "budget or category does not exist", apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to save expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, workspaceID, expenseID string) (*domain.Expense, error) {
	query := expenseSelectQuery + `WHERE workspace_id = $1 AND expense_id = $2;`
	modelExpense, err := scanExpense(r.Pool.QueryRow(ctx, query, workspaceID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find expense by ID "+expenseID, err)
	}
	domainExpense := mapping.ToDomainExpense(*modelExpense)
	return &domainExpense, nil
}

// ListExpenses retrieves a paginated list of expenses, newest first, optionally
// narrowed to a single budget.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, workspaceID string, budgetID *string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	filterClause := `WHERE workspace_id = $1`
	args := []any{workspaceID}
	if budgetID != nil {
		filterClause += ` AND budget_id = $2`
		args = append(args, *budgetID)
	}

	query := expenseSelectQuery + filterClause
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastExpenseID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (created_at, expense_id) < ($` + strconv.Itoa(len(args)+1) + `, $` + strconv.Itoa(len(args)+2) + `)`
		args = append(args, lastCreatedAt, lastExpenseID)
	}

	query += ` ORDER BY created_at DESC, expense_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query expenses for workspace "+workspaceID, err)
	}
	defer rows.Close()

	modelExpenses := make([]models.Expense, 0, fetchLimit)
	for rows.Next() {
		modelExpense, err := scanExpense(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan expense row for workspace "+workspaceID, err)
		}
		modelExpenses = append(modelExpenses, *modelExpense)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating expense rows for workspace "+workspaceID, err)
	}

	var nextTokenVal *string
	if len(modelExpenses) > limit {
		last := modelExpenses[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ExpenseID)
		nextTokenVal = &token
		modelExpenses = modelExpenses[:limit]
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nextTokenVal, nil
}
