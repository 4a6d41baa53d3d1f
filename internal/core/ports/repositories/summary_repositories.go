package repositories

import (
	"context"
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// SummaryRepositoryFacade computes aggregation rows for summaries. Balances
// are always derived by SQL summation over the half-open window [from, to);
// no running balance is ever read back from storage.
type SummaryRepositoryFacade interface {
	// GetBudgetActivity sums ledger amounts (funded) and expense amounts
	// (spent) for one budget. A budget with no activity yields zero sums.
	GetBudgetActivity(ctx context.Context, workspaceID, budgetID string, from, to time.Time) (*domain.BudgetActivity, error)
	// GetWorkspaceActivity returns one row per budget with activity in the
	// window, plus zero rows for budgets without any.
	GetWorkspaceActivity(ctx context.Context, workspaceID string, from, to time.Time) ([]domain.BudgetActivity, error)
}
