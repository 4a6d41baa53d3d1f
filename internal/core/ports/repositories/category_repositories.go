package repositories

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, workspaceID string, includeArchived bool) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
}
