package repositories

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// ExpenseRepositoryFacade defines persistence operations for expenses.
// Expenses are append-only; there is no update or delete.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, workspaceID, expenseID string) (*domain.Expense, error)
	// ListExpenses returns expenses newest-first with cursor pagination.
	// budgetID narrows the listing to one budget when non-nil.
	ListExpenses(ctx context.Context, workspaceID string, budgetID *string, limit int, nextToken *string) ([]domain.Expense, *string, error)
}
