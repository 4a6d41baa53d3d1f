package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// defaultSummaryWindow is applied when the caller gives no bounds.
const defaultSummaryWindow = 30 * 24 * time.Hour

// summaryDateLayouts are the accepted formats for summary bounds.
var summaryDateLayouts = []string{time.RFC3339, "2006-01-02"}

// summaryService computes point-in-time balances over a half-open window
// [from, to). Every figure is derived by summation at query time; nothing is
// cached or stored, so a summary racing a concurrent funding simply reflects
// whatever the storage engine's read consistency lets it see.
type summaryService struct {
	BaseService
	summaryRepo portsrepo.SummaryRepositoryFacade
	budgetRepo  portsrepo.BudgetRepositoryFacade
}

// SummaryServiceOption is a functional option for configuring the summary service.
type SummaryServiceOption func(*summaryService)

// WithSummaryWorkspaceAuthorizer sets the workspace authorizer for the summary service.
func WithSummaryWorkspaceAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) SummaryServiceOption {
	return func(s *summaryService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewSummaryService creates a new summary service with the provided options.
func NewSummaryService(summaryRepo portsrepo.SummaryRepositoryFacade, budgetRepo portsrepo.BudgetRepositoryFacade, options ...SummaryServiceOption) portssvc.SummarySvcFacade {
	svc := &summaryService{
		summaryRepo: summaryRepo,
		budgetRepo:  budgetRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// resolveWindow parses the raw bounds into a half-open [from, to) window.
// Missing bounds default to the trailing 30 days; unparsable or inverted
// bounds fail with ErrInvalidRange.
func resolveWindow(params dto.SummaryParams, now time.Time) (time.Time, time.Time, error) {
	to := now
	from := now.Add(-defaultSummaryWindow)

	if params.From != nil {
		parsed, err := parseSummaryDate(*params.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: from bound %q", apperrors.ErrInvalidRange, *params.From)
		}
		from = parsed
	}
	if params.To != nil {
		parsed, err := parseSummaryDate(*params.To)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: to bound %q", apperrors.ErrInvalidRange, *params.To)
		}
		to = parsed
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: window [%s, %s) is empty", apperrors.ErrInvalidRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return from, to, nil
}

func parseSummaryDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range summaryDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// buildSummary derives the two remaining-balance views from one activity row.
func buildSummary(budget *domain.Budget, activity *domain.BudgetActivity, from, to time.Time) domain.BudgetSummary {
	remainingClassic := budget.Target.Sub(activity.Spent)
	if remainingClassic.IsNegative() {
		remainingClassic = decimal.Zero // floored; the envelope view carries the overspend signal
	}

	return domain.BudgetSummary{
		BudgetID:          budget.BudgetID,
		Name:              budget.Name,
		Target:            budget.Target,
		Funded:            activity.Funded,
		Spent:             activity.Spent,
		RemainingClassic:  remainingClassic,
		EnvelopeRemaining: activity.Funded.Sub(activity.Spent),
		From:              from,
		To:                to,
	}
}

// SummarizeBudget computes funded/spent and both remaining views for one
// budget. Archived budgets are summarizable; activeness is a write-time
// concern only.
func (s *summaryService) SummarizeBudget(ctx context.Context, workspaceID, budgetID string, params dto.SummaryParams, requestingUserID string) (*domain.BudgetSummary, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	from, to, err := resolveWindow(params, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, workspaceID, budgetID)
	if err != nil {
		return nil, err
	}

	activity, err := s.summaryRepo.GetBudgetActivity(ctx, workspaceID, budgetID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate budget activity",
			slog.String("budget_id", budgetID),
			slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to aggregate budget activity: %w", err)
	}

	summary := buildSummary(budget, activity, from, to)

	s.LogDebug(ctx, "Budget summarized",
		slog.String("budget_id", budgetID),
		slog.String("funded", summary.Funded.String()),
		slog.String("spent", summary.Spent.String()))
	return &summary, nil
}

// SummarizeWorkspace rolls up every budget in the workspace over one window.
func (s *summaryService) SummarizeWorkspace(ctx context.Context, workspaceID string, params dto.SummaryParams, requestingUserID string) (*domain.WorkspaceSummary, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	from, to, err := resolveWindow(params, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListBudgets(ctx, workspaceID, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for workspace summary", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to retrieve budgets: %w", err)
	}

	rows, err := s.summaryRepo.GetWorkspaceActivity(ctx, workspaceID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate workspace activity", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to aggregate workspace activity: %w", err)
	}

	activityByBudget := make(map[string]domain.BudgetActivity, len(rows))
	for _, row := range rows {
		activityByBudget[row.BudgetID] = row
	}

	result := domain.WorkspaceSummary{
		WorkspaceID: workspaceID,
		Budgets:     make([]domain.BudgetSummary, 0, len(budgets)),
		TotalFunded: decimal.Zero,
		TotalSpent:  decimal.Zero,
		From:        from,
		To:          to,
	}

	for i := range budgets {
		activity, ok := activityByBudget[budgets[i].BudgetID]
		if !ok {
			// Budgets without window activity still get a zero row.
			activity = domain.BudgetActivity{
				BudgetID: budgets[i].BudgetID,
				Funded:   decimal.Zero,
				Spent:    decimal.Zero,
			}
		}
		summary := buildSummary(&budgets[i], &activity, from, to)
		result.Budgets = append(result.Budgets, summary)
		result.TotalFunded = result.TotalFunded.Add(summary.Funded)
		result.TotalSpent = result.TotalSpent.Add(summary.Spent)
	}

	s.LogInfo(ctx, "Workspace summarized",
		slog.String("workspace_id", workspaceID),
		slog.Int("budget_count", len(result.Budgets)))
	return &result, nil
}
