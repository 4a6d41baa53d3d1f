package repositories

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// BudgetRepositoryFacade defines persistence operations for budgets.
//
// Find methods are workspace-scoped: a budget that exists in a different
// workspace is reported as not found.
type BudgetRepositoryFacade interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	// FindBudgetByID resolves a budget regardless of its active flag.
	// Archived budgets must stay readable for summaries and history.
	FindBudgetByID(ctx context.Context, workspaceID, budgetID string) (*domain.Budget, error)
	// FindActiveBudget resolves a budget only while it is active. Returns
	// apperrors.ErrNotFound for archived budgets; this is the write-time check.
	FindActiveBudget(ctx context.Context, workspaceID, budgetID string) (*domain.Budget, error)
	// FindBudgetsByIDs resolves several budgets at once; missing IDs are simply
	// absent from the result map, callers decide how to treat partial matches.
	FindBudgetsByIDs(ctx context.Context, workspaceID string, budgetIDs []string) (map[string]domain.Budget, error)
	ListBudgets(ctx context.Context, workspaceID string, includeArchived bool) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
}
