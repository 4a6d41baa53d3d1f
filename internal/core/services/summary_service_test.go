package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/core/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// --- Mock SummaryRepository ---
type MockSummaryRepository struct {
	mock.Mock
}

var _ portsrepo.SummaryRepositoryFacade = (*MockSummaryRepository)(nil)

func (m *MockSummaryRepository) GetBudgetActivity(ctx context.Context, workspaceID, budgetID string, from, to time.Time) (*domain.BudgetActivity, error) {
	args := m.Called(ctx, workspaceID, budgetID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetActivity), args.Error(1)
}

func (m *MockSummaryRepository) GetWorkspaceActivity(ctx context.Context, workspaceID string, from, to time.Time) ([]domain.BudgetActivity, error) {
	args := m.Called(ctx, workspaceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetActivity), args.Error(1)
}

// --- Test Suite Setup ---
type SummaryServiceTestSuite struct {
	suite.Suite
	mockSummaryRepo *MockSummaryRepository
	mockBudgetRepo  *MockBudgetRepository
	mockAuthorizer  *MockWorkspaceAuthorizer
	service         portssvc.SummarySvcFacade
	workspaceID     string
	userID          string
	groceries       *domain.Budget
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockSummaryRepo = new(MockSummaryRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockAuthorizer = new(MockWorkspaceAuthorizer)
	suite.service = services.NewSummaryService(
		suite.mockSummaryRepo,
		suite.mockBudgetRepo,
		services.WithSummaryWorkspaceAuthorizer(suite.mockAuthorizer),
	)

	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.groceries = &domain.Budget{
		BudgetID:    uuid.NewString(),
		WorkspaceID: suite.workspaceID,
		Name:        "Groceries",
		Target:      decimal.NewFromInt(200),
		Period:      domain.PeriodMonthly,
		IsActive:    true,
	}
}

func (suite *SummaryServiceTestSuite) expectReadAuth(ctx context.Context) {
	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(nil).Once()
}

// --- Test Cases ---

// Fund 150, spend 40, target 200: the classic view says 160 left toward the
// target, the envelope view says 110 left in the envelope.
func (suite *SummaryServiceTestSuite) TestSummarizeBudget_BothRemainingViews() {
	ctx := context.Background()
	suite.expectReadAuth(ctx)
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.workspaceID, suite.groceries.BudgetID).Return(suite.groceries, nil).Once()
	suite.mockSummaryRepo.On("GetBudgetActivity", ctx, suite.workspaceID, suite.groceries.BudgetID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(&domain.BudgetActivity{
			BudgetID: suite.groceries.BudgetID,
			Funded:   decimal.NewFromInt(150),
			Spent:    decimal.NewFromInt(40),
		}, nil).Once()

	summary, err := suite.service.SummarizeBudget(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.SummaryParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.Funded.Equal(decimal.NewFromInt(150)))
	suite.True(summary.Spent.Equal(decimal.NewFromInt(40)))
	suite.True(summary.RemainingClassic.Equal(decimal.NewFromInt(160)))
	suite.True(summary.EnvelopeRemaining.Equal(decimal.NewFromInt(110)))
}

func (suite *SummaryServiceTestSuite) TestSummarizeBudget_OverspendFloorsClassicNotEnvelope() {
	ctx := context.Background()
	suite.expectReadAuth(ctx)
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.workspaceID, suite.groceries.BudgetID).Return(suite.groceries, nil).Once()
	suite.mockSummaryRepo.On("GetBudgetActivity", ctx, suite.workspaceID, suite.groceries.BudgetID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(&domain.BudgetActivity{
			BudgetID: suite.groceries.BudgetID,
			Funded:   decimal.NewFromInt(100),
			Spent:    decimal.NewFromInt(250),
		}, nil).Once()

	summary, err := suite.service.SummarizeBudget(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.SummaryParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.RemainingClassic.IsZero(), "classic view never goes negative")
	suite.True(summary.EnvelopeRemaining.Equal(decimal.NewFromInt(-150)), "envelope view carries the overspend")
}

func (suite *SummaryServiceTestSuite) TestSummarizeBudget_NoActivityIsAllZeros() {
	ctx := context.Background()
	suite.expectReadAuth(ctx)
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.workspaceID, suite.groceries.BudgetID).Return(suite.groceries, nil).Once()
	suite.mockSummaryRepo.On("GetBudgetActivity", ctx, suite.workspaceID, suite.groceries.BudgetID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(&domain.BudgetActivity{BudgetID: suite.groceries.BudgetID, Funded: decimal.Zero, Spent: decimal.Zero}, nil).Once()

	summary, err := suite.service.SummarizeBudget(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.SummaryParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.Funded.IsZero())
	suite.True(summary.Spent.IsZero())
	suite.True(summary.RemainingClassic.Equal(decimal.NewFromInt(200)))
	suite.True(summary.EnvelopeRemaining.IsZero())
}

func (suite *SummaryServiceTestSuite) TestSummarizeBudget_DefaultWindowIsThirtyDays() {
	ctx := context.Background()
	suite.expectReadAuth(ctx)
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.workspaceID, suite.groceries.BudgetID).Return(suite.groceries, nil).Once()
	suite.mockSummaryRepo.On("GetBudgetActivity", ctx, suite.workspaceID, suite.groceries.BudgetID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(&domain.BudgetActivity{BudgetID: suite.groceries.BudgetID, Funded: decimal.Zero, Spent: decimal.Zero}, nil).Once()

	summary, err := suite.service.SummarizeBudget(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.SummaryParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(30*24*time.Hour, summary.To.Sub(summary.From))
}

func (suite *SummaryServiceTestSuite) TestSummarizeBudget_ExplicitBounds() {
	ctx := context.Background()
	from := "2025-03-01"
	to := "2025-04-01"
	suite.expectReadAuth(ctx)
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.workspaceID, suite.groceries.BudgetID).Return(suite.groceries, nil).Once()

	expectedFrom := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	expectedTo := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.mockSummaryRepo.On("GetBudgetActivity", ctx, suite.workspaceID, suite.groceries.BudgetID, expectedFrom, expectedTo).
		Return(&domain.BudgetActivity{BudgetID: suite.groceries.BudgetID, Funded: decimal.Zero, Spent: decimal.Zero}, nil).Once()

	summary, err := suite.service.SummarizeBudget(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.SummaryParams{From: &from, To: &to}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(expectedFrom, summary.From)
	suite.Equal(expectedTo, summary.To)
	suite.mockSummaryRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestSummarizeBudget_UnparsableBound() {
	ctx := context.Background()
	bad := "last-tuesday"
	suite.expectReadAuth(ctx)

	_, err := suite.service.SummarizeBudget(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.SummaryParams{From: &bad}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
	suite.mockSummaryRepo.AssertNotCalled(suite.T(), "GetBudgetActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SummaryServiceTestSuite) TestSummarizeBudget_InvertedBounds() {
	ctx := context.Background()
	from := "2025-04-01"
	to := "2025-03-01"
	suite.expectReadAuth(ctx)

	_, err := suite.service.SummarizeBudget(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.SummaryParams{From: &from, To: &to}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
}

func (suite *SummaryServiceTestSuite) TestSummarizeBudget_ArchivedBudgetSummarizable() {
	ctx := context.Background()
	archivedAt := time.Now().UTC()
	suite.groceries.IsActive = false
	suite.groceries.ArchivedAt = &archivedAt

	suite.expectReadAuth(ctx)
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, suite.workspaceID, suite.groceries.BudgetID).Return(suite.groceries, nil).Once()
	suite.mockSummaryRepo.On("GetBudgetActivity", ctx, suite.workspaceID, suite.groceries.BudgetID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(&domain.BudgetActivity{BudgetID: suite.groceries.BudgetID, Funded: decimal.NewFromInt(80), Spent: decimal.NewFromInt(20)}, nil).Once()

	summary, err := suite.service.SummarizeBudget(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.SummaryParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.EnvelopeRemaining.Equal(decimal.NewFromInt(60)))
}

func (suite *SummaryServiceTestSuite) TestSummarizeWorkspace_RollupWithZeroRows() {
	ctx := context.Background()
	idle := domain.Budget{
		BudgetID:    uuid.NewString(),
		WorkspaceID: suite.workspaceID,
		Name:        "Vacation",
		Target:      decimal.NewFromInt(500),
		Period:      domain.PeriodAnnual,
		IsActive:    true,
	}

	suite.expectReadAuth(ctx)
	suite.mockBudgetRepo.On("ListBudgets", ctx, suite.workspaceID, true).
		Return([]domain.Budget{*suite.groceries, idle}, nil).Once()
	// Only groceries has activity in the window.
	suite.mockSummaryRepo.On("GetWorkspaceActivity", ctx, suite.workspaceID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.BudgetActivity{
			{BudgetID: suite.groceries.BudgetID, Funded: decimal.NewFromInt(150), Spent: decimal.NewFromInt(40)},
		}, nil).Once()

	summary, err := suite.service.SummarizeWorkspace(ctx, suite.workspaceID, dto.SummaryParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Budgets, 2)
	suite.True(summary.TotalFunded.Equal(decimal.NewFromInt(150)))
	suite.True(summary.TotalSpent.Equal(decimal.NewFromInt(40)))

	byID := make(map[string]domain.BudgetSummary)
	for _, b := range summary.Budgets {
		byID[b.BudgetID] = b
	}
	suite.True(byID[idle.BudgetID].Funded.IsZero())
	suite.True(byID[idle.BudgetID].Spent.IsZero())
	suite.True(byID[idle.BudgetID].RemainingClassic.Equal(decimal.NewFromInt(500)))
}

func (suite *SummaryServiceTestSuite) TestSummarizeWorkspace_AuthorizationFail() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.SummarizeWorkspace(ctx, suite.workspaceID, dto.SummaryParams{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "ListBudgets", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
