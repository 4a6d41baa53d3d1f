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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIncomeRepository struct {
	BaseRepository
}

// newPgxIncomeRepository creates a new repository for income data.
func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxIncomeRepository implements portsrepo.IncomeRepositoryFacade
var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

const incomeSelectQuery = `
	SELECT income_id, workspace_id, source, amount, received_date, note,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM incomes
`

func scanIncome(row pgx.Row) (*models.Income, error) {
	var in models.Income
	err := row.Scan(
		&in.IncomeID,
		&in.WorkspaceID,
		&in.Source,
		&in.Amount,
		&in.ReceivedDate,
		&in.Note,
		&in.CreatedAt,
		&in.CreatedBy,
		&in.LastUpdatedAt,
		&in.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	modelIncome := mapping.ToModelIncome(income)
	query := `
		INSERT INTO incomes (
			income_id, workspace_id, source, amount, received_date, note,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelIncome.IncomeID,
		modelIncome.WorkspaceID,
		modelIncome.Source,
		modelIncome.Amount,
		modelIncome.ReceivedDate,
		modelIncome.Note,
		modelIncome.CreatedAt,
		modelIncome.CreatedBy,
		modelIncome.LastUpdatedAt,
		modelIncome.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save income "+income.IncomeID, err)
	}
	return nil
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, workspaceID, incomeID string) (*domain.Income, error) {
	query := incomeSelectQuery + `WHERE workspace_id = $1 AND income_id = $2;`
	modelIncome, err := scanIncome(r.Pool.QueryRow(ctx, query, workspaceID, incomeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find income by ID "+incomeID, err)
	}
	domainIncome := mapping.ToDomainIncome(*modelIncome)
	return &domainIncome, nil
}

// ListIncomes retrieves a paginated list of income records, newest first.
func (r *PgxIncomeRepository) ListIncomes(ctx context.Context, workspaceID string, limit int, nextToken *string) ([]domain.Income, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	args := []any{workspaceID}
	query := incomeSelectQuery + `WHERE workspace_id = $1`

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastIncomeID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (created_at, income_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastIncomeID)
	}

	query += ` ORDER BY created_at DESC, income_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query incomes for workspace "+workspaceID, err)
	}
	defer rows.Close()

	modelIncomes := make([]models.Income, 0, fetchLimit)
	for rows.Next() {
		modelIncome, err := scanIncome(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan income row for workspace "+workspaceID, err)
		}
		modelIncomes = append(modelIncomes, *modelIncome)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating income rows for workspace "+workspaceID, err)
	}

	var nextTokenVal *string
	if len(modelIncomes) > limit {
		last := modelIncomes[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.IncomeID)
		nextTokenVal = &token
		modelIncomes = modelIncomes[:limit]
	}

	return mapping.ToDomainIncomeSlice(modelIncomes), nextTokenVal, nil
}
