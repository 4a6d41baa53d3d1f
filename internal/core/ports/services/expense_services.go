package services

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// ExpenseSvcFacade defines expense recording and listing. Expenses are
// append-only spend records that count against a budget's remaining balance.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, workspaceID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, workspaceID, expenseID, requestingUserID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, workspaceID string, params dto.ListExpensesParams, requestingUserID string) (*dto.ListExpensesResponse, error)
}

// CategorySvcFacade defines category directory operations.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, workspaceID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, workspaceID, categoryID, requestingUserID string) (*domain.Category, error)
	ListCategories(ctx context.Context, workspaceID string, includeArchived bool, requestingUserID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, workspaceID, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)
	ArchiveCategory(ctx context.Context, workspaceID, categoryID, requestingUserID string) error
}

// IncomeSvcFacade defines income recording and listing.
type IncomeSvcFacade interface {
	CreateIncome(ctx context.Context, workspaceID string, req dto.CreateIncomeRequest, creatorUserID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, workspaceID string, params dto.ListIncomesParams, requestingUserID string) (*dto.ListIncomesResponse, error)
}
