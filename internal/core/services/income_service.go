package services

import (
	"context"
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

const defaultIncomePageLimit = 20

// incomeService records money received into a workspace. Income records are
// append-only and independent of budgets.
type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepositoryFacade
}

// NewIncomeService creates a new income service.
func NewIncomeService(incomeRepo portsrepo.IncomeRepositoryFacade, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.IncomeSvcFacade {
	return &incomeService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		incomeRepo:  incomeRepo,
	}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// CreateIncome records an income. Amount must be strictly positive.
func (s *incomeService) CreateIncome(ctx context.Context, workspaceID string, req dto.CreateIncomeRequest, creatorUserID string) (*domain.Income, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: income amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}

	now := time.Now().UTC()
	receivedDate := now
	if req.Date != nil {
		receivedDate = req.Date.UTC()
	}

	income := domain.Income{
		IncomeID:     uuid.NewString(),
		WorkspaceID:  workspaceID,
		Source:       req.Source,
		Amount:       req.Amount,
		ReceivedDate: receivedDate,
		Note:         req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to save income", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to record income: %w", err)
	}

	s.LogInfo(ctx, "Income recorded", slog.String("income_id", income.IncomeID), slog.String("amount", income.Amount.String()))
	return &income, nil
}

// ListIncomes returns a page of income records, newest first.
func (s *incomeService) ListIncomes(ctx context.Context, workspaceID string, params dto.ListIncomesParams, requestingUserID string) (*dto.ListIncomesResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultIncomePageLimit
	}

	incomes, nextToken, err := s.incomeRepo.ListIncomes(ctx, workspaceID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incomes", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to retrieve incomes: %w", err)
	}

	return &dto.ListIncomesResponse{
		Incomes:   dto.ToIncomeResponses(incomes),
		NextToken: nextToken,
	}, nil
}
