package services

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// BudgetSvcFacade defines budget directory operations. Budgets are reference
// data for the ledger core; they are archived, never hard-deleted.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, workspaceID string, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error)
	// GetBudgetByID resolves archived budgets too; activeness only matters
	// at write time.
	GetBudgetByID(ctx context.Context, workspaceID, budgetID, requestingUserID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, workspaceID string, includeArchived bool, requestingUserID string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, workspaceID, budgetID string, req dto.UpdateBudgetRequest, requestingUserID string) (*domain.Budget, error)
	// ArchiveBudget is the Active -> Archived transition (soft delete).
	ArchiveBudget(ctx context.Context, workspaceID, budgetID, requestingUserID string) error
	// RestoreBudget is the explicit Archived -> Active transition.
	RestoreBudget(ctx context.Context, workspaceID, budgetID, requestingUserID string) error

	// FindActiveBudgets is the directory contract the ledger core consumes
	// before accepting fundings and transfers. Missing, archived and
	// cross-workspace IDs are absent from the result map.
	FindActiveBudgets(ctx context.Context, workspaceID string, budgetIDs []string) (map[string]domain.Budget, error)
}
