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

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, workspaceID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, workspaceID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, workspaceID string, budgetID *string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, workspaceID, budgetID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Expense), returnedNextToken, args.Error(2)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, workspaceID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, workspaceID string, includeArchived bool) ([]domain.Category, error) {
	args := m.Called(ctx, workspaceID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Test Suite Setup ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo  *MockExpenseRepository
	mockCategoryRepo *MockCategoryRepository
	mockBudgetSvc    *MockBudgetService
	mockAuthorizer   *MockWorkspaceAuthorizer
	service          portssvc.ExpenseSvcFacade
	workspaceID      string
	userID           string
	groceries        domain.Budget
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockBudgetSvc = new(MockBudgetService)
	suite.mockAuthorizer = new(MockWorkspaceAuthorizer)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockCategoryRepo, suite.mockBudgetSvc, suite.mockAuthorizer)

	suite.workspaceID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.groceries = domain.Budget{
		BudgetID:    uuid.NewString(),
		WorkspaceID: suite.workspaceID,
		Name:        "Groceries",
		Target:      decimal.NewFromInt(200),
		Period:      domain.PeriodMonthly,
		IsActive:    true,
	}
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		BudgetID:    &suite.groceries.BudgetID,
		Amount:      decimal.NewFromInt(40),
		Description: "weekly shop",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{suite.groceries.BudgetID}).
		Return(map[string]domain.Budget{suite.groceries.BudgetID: suite.groceries}, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.Require().NotNil(expense.BudgetID)
	suite.Equal(suite.groceries.BudgetID, *expense.BudgetID)
	suite.True(expense.Amount.Equal(decimal.NewFromInt(40)))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_WithoutBudgetOrCategory() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{Amount: decimal.NewFromInt(12), Description: "coffee"}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(expense.BudgetID)
	suite.Nil(expense.CategoryID)
	suite.mockBudgetSvc.AssertNotCalled(suite.T(), "FindActiveBudgets", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CategoryDefaultBudgetHint() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	category := &domain.Category{
		CategoryID:      categoryID,
		WorkspaceID:     suite.workspaceID,
		Name:            "Food",
		DefaultBudgetID: &suite.groceries.BudgetID,
		IsActive:        true,
	}
	req := dto.CreateExpenseRequest{CategoryID: &categoryID, Amount: decimal.NewFromInt(25)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.workspaceID, categoryID).Return(category, nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{suite.groceries.BudgetID}).
		Return(map[string]domain.Budget{suite.groceries.BudgetID: suite.groceries}, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense.BudgetID)
	suite.Equal(suite.groceries.BudgetID, *expense.BudgetID)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ExplicitBudgetBeatsCategoryHint() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	otherBudgetID := uuid.NewString()
	other := domain.Budget{BudgetID: otherBudgetID, WorkspaceID: suite.workspaceID, IsActive: true}
	category := &domain.Category{
		CategoryID:      categoryID,
		WorkspaceID:     suite.workspaceID,
		DefaultBudgetID: &suite.groceries.BudgetID,
		IsActive:        true,
	}
	req := dto.CreateExpenseRequest{BudgetID: &otherBudgetID, CategoryID: &categoryID, Amount: decimal.NewFromInt(25)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.workspaceID, categoryID).Return(category, nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{otherBudgetID}).
		Return(map[string]domain.Budget{otherBudgetID: other}, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(otherBudgetID, *expense.BudgetID)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ArchivedCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	category := &domain.Category{CategoryID: categoryID, WorkspaceID: suite.workspaceID, IsActive: false}
	req := dto.CreateExpenseRequest{CategoryID: &categoryID, Amount: decimal.NewFromInt(5)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.workspaceID, categoryID).Return(category, nil).Once()

	_, err := suite.service.CreateExpense(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{Amount: decimal.NewFromInt(-3)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.CreateExpense(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ArchivedBudget() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{BudgetID: &suite.groceries.BudgetID, Amount: decimal.NewFromInt(10)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{suite.groceries.BudgetID}).
		Return(map[string]domain.Budget{}, nil).Once()

	_, err := suite.service.CreateExpense(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DefaultsDateToNow() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{Amount: decimal.NewFromInt(10)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	before := time.Now().UTC()
	expense, err := suite.service.CreateExpense(ctx, suite.workspaceID, req, suite.userID)
	after := time.Now().UTC()

	suite.Require().NoError(err)
	suite.False(expense.ExpenseDate.Before(before))
	suite.False(expense.ExpenseDate.After(after))
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_BudgetFilter() {
	ctx := context.Background()
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), WorkspaceID: suite.workspaceID, BudgetID: &suite.groceries.BudgetID, Amount: decimal.NewFromInt(40)},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", ctx, suite.workspaceID, &suite.groceries.BudgetID, 20, (*string)(nil)).
		Return(expenses, nil, nil).Once()

	resp, err := suite.service.ListExpenses(ctx, suite.workspaceID, dto.ListExpensesParams{BudgetID: &suite.groceries.BudgetID}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(resp.Expenses, 1)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
