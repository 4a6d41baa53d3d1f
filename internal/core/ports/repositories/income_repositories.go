package repositories

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// IncomeRepositoryFacade defines persistence operations for income records.
type IncomeRepositoryFacade interface {
	SaveIncome(ctx context.Context, income domain.Income) error
	FindIncomeByID(ctx context.Context, workspaceID, incomeID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, workspaceID string, limit int, nextToken *string) ([]domain.Income, *string, error)
}
