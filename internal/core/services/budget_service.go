package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

var (
	ErrNegativeTarget  = errors.New("budget target must not be negative")
	ErrInvalidPeriod   = errors.New("budget period must be MONTHLY, QUARTERLY or ANNUAL")
	ErrAlreadyArchived = errors.New("budget is already archived")
	ErrNotArchived     = errors.New("budget is not archived")
)

// budgetService implements the budget directory: reference data the ledger
// core points at by identifier.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// BudgetServiceOption is a functional option for configuring the budget service.
type BudgetServiceOption func(*budgetService)

// WithBudgetWorkspaceAuthorizer sets the workspace authorizer for the budget service.
func WithBudgetWorkspaceAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) BudgetServiceOption {
	return func(s *budgetService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// NewBudgetService creates a new budget service with the provided options.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{budgetRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget creates a new active budget after validation.
func (s *budgetService) CreateBudget(ctx context.Context, workspaceID string, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Target.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeTarget)
	}
	period := domain.BudgetPeriod(req.Period)
	if !domain.ValidPeriod(period) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidPeriod)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Target:      req.Target,
		Period:      period,
		Color:       req.Color,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.LogInfo(ctx, "Budget created successfully",
		slog.String("budget_id", budget.BudgetID),
		slog.String("workspace_id", workspaceID))
	return &budget, nil
}

// GetBudgetByID retrieves a budget. Archived budgets resolve too; the active
// flag only gates writes.
func (s *budgetService) GetBudgetByID(ctx context.Context, workspaceID, budgetID, requestingUserID string) (*domain.Budget, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, workspaceID, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget by ID", slog.String("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

// ListBudgets lists budgets in a workspace, optionally including archived ones.
func (s *budgetService) ListBudgets(ctx context.Context, workspaceID string, includeArchived bool, requestingUserID string) ([]domain.Budget, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListBudgets(ctx, workspaceID, includeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to retrieve budgets: %w", err)
	}
	return budgets, nil
}

// UpdateBudget patches name/target/period/color of a budget.
func (s *budgetService) UpdateBudget(ctx context.Context, workspaceID, budgetID string, req dto.UpdateBudgetRequest, requestingUserID string) (*domain.Budget, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, workspaceID, budgetID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		budget.Name = *req.Name
		updated = true
	}
	if req.Target != nil {
		if req.Target.IsNegative() {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeTarget)
		}
		budget.Target = *req.Target
		updated = true
	}
	if req.Period != nil {
		period := domain.BudgetPeriod(*req.Period)
		if !domain.ValidPeriod(period) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidPeriod)
		}
		budget.Period = period
		updated = true
	}
	if req.Color != nil {
		budget.Color = *req.Color
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No fields provided for budget update", slog.String("budget_id", budgetID))
		return budget, nil
	}

	budget.LastUpdatedAt = time.Now().UTC()
	budget.LastUpdatedBy = requestingUserID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget update", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to save budget update: %w", err)
	}

	s.LogInfo(ctx, "Budget updated successfully", slog.String("budget_id", budgetID))
	return budget, nil
}

// ArchiveBudget soft-deletes a budget. Existing ledger entries and expenses
// referencing it stay valid; only new writes are rejected.
func (s *budgetService) ArchiveBudget(ctx context.Context, workspaceID, budgetID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, workspaceID, budgetID)
	if err != nil {
		return err
	}
	if !budget.IsActive {
		return fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrAlreadyArchived)
	}

	now := time.Now().UTC()
	budget.IsActive = false
	budget.ArchivedAt = &now
	budget.LastUpdatedAt = now
	budget.LastUpdatedBy = requestingUserID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to archive budget", slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to archive budget: %w", err)
	}

	s.LogInfo(ctx, "Budget archived", slog.String("budget_id", budgetID))
	return nil
}

// RestoreBudget reactivates an archived budget.
func (s *budgetService) RestoreBudget(ctx context.Context, workspaceID, budgetID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, workspaceID, budgetID)
	if err != nil {
		return err
	}
	if budget.IsActive {
		return fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrNotArchived)
	}

	budget.IsActive = true
	budget.ArchivedAt = nil
	budget.LastUpdatedAt = time.Now().UTC()
	budget.LastUpdatedBy = requestingUserID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to restore budget", slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to restore budget: %w", err)
	}

	s.LogInfo(ctx, "Budget restored", slog.String("budget_id", budgetID))
	return nil
}

// FindActiveBudgets resolves the given IDs to active budgets in the
// workspace. Missing, archived or cross-workspace IDs are absent from the
// result map; the ledger core decides how to treat partial matches.
func (s *budgetService) FindActiveBudgets(ctx context.Context, workspaceID string, budgetIDs []string) (map[string]domain.Budget, error) {
	budgets, err := s.budgetRepo.FindBudgetsByIDs(ctx, workspaceID, budgetIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch budgets by IDs", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	active := make(map[string]domain.Budget, len(budgets))
	for id, b := range budgets {
		if b.WorkspaceID != workspaceID || !b.IsActive {
			continue
		}
		active[id] = b
	}
	return active, nil
}
