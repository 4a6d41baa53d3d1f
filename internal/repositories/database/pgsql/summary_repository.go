package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// summaryRepository implements the SummaryRepositoryFacade interface. All
// figures are computed by SQL summation over the half-open window [from, to);
// nothing is ever read from a stored running balance.
type summaryRepository struct {
	BaseRepository
}

// newSummaryRepository creates a new summary repository
func newSummaryRepository(db *pgxpool.Pool) portsrepo.SummaryRepositoryFacade {
	return &summaryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure summaryRepository implements portsrepo.SummaryRepositoryFacade
var _ portsrepo.SummaryRepositoryFacade = (*summaryRepository)(nil)

// GetBudgetActivity sums signed ledger amounts (funded) and expense amounts
// (spent) for one budget within the window.
func (r *summaryRepository) GetBudgetActivity(ctx context.Context, workspaceID, budgetID string, from, to time.Time) (*domain.BudgetActivity, error) {
	query := `
		SELECT
			COALESCE((
				SELECT SUM(le.amount)
				FROM ledger_entries le
				WHERE le.workspace_id = $1 AND le.budget_id = $2
					AND le.entry_date >= $3 AND le.entry_date < $4
			), 0) AS funded,
			COALESCE((
				SELECT SUM(e.amount)
				FROM expenses e
				WHERE e.workspace_id = $1 AND e.budget_id = $2
					AND e.expense_date >= $3 AND e.expense_date < $4
			), 0) AS spent;
	`
	activity := domain.BudgetActivity{BudgetID: budgetID}
	err := r.Pool.QueryRow(ctx, query, workspaceID, budgetID, from, to).Scan(
		&activity.Funded,
		&activity.Spent,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying activity for budget %s: %w", budgetID, err)
	}
	return &activity, nil
}

// GetWorkspaceActivity returns one aggregation row per budget in the
// workspace. Budgets without any activity in the window still get a zero row
// via the LEFT JOINs.
func (r *summaryRepository) GetWorkspaceActivity(ctx context.Context, workspaceID string, from, to time.Time) ([]domain.BudgetActivity, error) {
	query := `
		SELECT
			b.budget_id,
			COALESCE(l.funded, 0) AS funded,
			COALESCE(e.spent, 0) AS spent
		FROM budgets b
		LEFT JOIN (
			SELECT budget_id, SUM(amount) AS funded
			FROM ledger_entries
			WHERE workspace_id = $1 AND entry_date >= $2 AND entry_date < $3
			GROUP BY budget_id
		) l ON l.budget_id = b.budget_id
		LEFT JOIN (
			SELECT budget_id, SUM(amount) AS spent
			FROM expenses
			WHERE workspace_id = $1 AND expense_date >= $2 AND expense_date < $3
			GROUP BY budget_id
		) e ON e.budget_id = b.budget_id
		WHERE b.workspace_id = $1
		ORDER BY b.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying activity for workspace %s: %w", workspaceID, err)
	}
	defer rows.Close()

	var result []domain.BudgetActivity
	for rows.Next() {
		var row domain.BudgetActivity
		if err := rows.Scan(&row.BudgetID, &row.Funded, &row.Spent); err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.BudgetActivity{}, nil
	}
	return result, nil
}
