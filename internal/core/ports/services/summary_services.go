package services

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// SummarySvcFacade computes point-in-time balances over [from, to). Bounds
// arrive as raw strings; unparsable or inverted bounds fail with
// apperrors.ErrInvalidRange. Archived budgets remain summarizable.
type SummarySvcFacade interface {
	SummarizeBudget(ctx context.Context, workspaceID, budgetID string, params dto.SummaryParams, requestingUserID string) (*domain.BudgetSummary, error)
	SummarizeWorkspace(ctx context.Context, workspaceID string, params dto.SummaryParams, requestingUserID string) (*domain.WorkspaceSummary, error)
}
