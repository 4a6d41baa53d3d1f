package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

var ErrCategoryArchived = errors.New("category is archived")

// expenseService records spend against workspaces and, optionally, budgets.
// An expense without an explicit budget borrows the category's default
// budget hint when one exists.
type expenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	budgetSvc    portssvc.BudgetSvcFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, budgetSvc portssvc.BudgetSvcFacade, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService:  BaseService{WorkspaceAuthorizer: authorizer},
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		budgetSvc:    budgetSvc,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense validates and appends a spend record.
func (s *expenseService) CreateExpense(ctx context.Context, workspaceID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must not be negative", apperrors.ErrInvalidAmount)
	}

	budgetID := req.BudgetID

	// Resolve the category and, when no budget was given, its default
	// budget hint.
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, workspaceID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !category.IsActive {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrCategoryArchived)
		}
		if budgetID == nil && category.DefaultBudgetID != nil {
			budgetID = category.DefaultBudgetID
			s.LogDebug(ctx, "Expense budget resolved from category default",
				slog.String("category_id", *req.CategoryID),
				slog.String("budget_id", *budgetID))
		}
	}

	// A referenced budget must be active in this workspace at write time.
	if budgetID != nil {
		budgets, err := s.budgetSvc.FindActiveBudgets(ctx, workspaceID, []string{*budgetID})
		if err != nil {
			return nil, err
		}
		if _, found := budgets[*budgetID]; !found {
			return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, *budgetID)
		}
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		WorkspaceID: workspaceID,
		BudgetID:    budgetID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		ExpenseDate: date,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", req.Amount.String()))
	return &expense, nil
}

// GetExpenseByID retrieves an expense within the workspace.
func (s *expenseService) GetExpenseByID(ctx context.Context, workspaceID, expenseID, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, workspaceID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

// ListExpenses lists expenses in a workspace, optionally narrowed to one budget.
func (s *expenseService) ListExpenses(ctx context.Context, workspaceID string, params dto.ListExpensesParams, requestingUserID string) (*dto.ListExpensesResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20 // Default limit
	}

	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, workspaceID, params.BudgetID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}

	return &dto.ListExpensesResponse{
		Expenses:  dto.ToExpenseResponses(expenses),
		NextToken: nextToken,
	}, nil
}
