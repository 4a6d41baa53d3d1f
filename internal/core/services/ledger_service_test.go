package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/core/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer, legs [2]domain.LedgerEntry) error {
	args := m.Called(ctx, transfer, legs)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, workspaceID, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, workspaceID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByBudget(ctx context.Context, workspaceID, budgetID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, workspaceID, budgetID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockLedgerRepository) FindTransferByID(ctx context.Context, workspaceID, transferID string) (*domain.Transfer, error) {
	args := m.Called(ctx, workspaceID, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

// --- Mock BudgetService (as consumed by the ledger core) ---
type MockBudgetService struct {
	mock.Mock
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

func (m *MockBudgetService) CreateBudget(ctx context.Context, workspaceID string, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error) {
	args := m.Called(ctx, workspaceID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) GetBudgetByID(ctx context.Context, workspaceID, budgetID, requestingUserID string) (*domain.Budget, error) {
	args := m.Called(ctx, workspaceID, budgetID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) ListBudgets(ctx context.Context, workspaceID string, includeArchived bool, requestingUserID string) ([]domain.Budget, error) {
	args := m.Called(ctx, workspaceID, includeArchived, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetService) UpdateBudget(ctx context.Context, workspaceID, budgetID string, req dto.UpdateBudgetRequest, requestingUserID string) (*domain.Budget, error) {
	args := m.Called(ctx, workspaceID, budgetID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) ArchiveBudget(ctx context.Context, workspaceID, budgetID, requestingUserID string) error {
	args := m.Called(ctx, workspaceID, budgetID, requestingUserID)
	return args.Error(0)
}

func (m *MockBudgetService) RestoreBudget(ctx context.Context, workspaceID, budgetID, requestingUserID string) error {
	args := m.Called(ctx, workspaceID, budgetID, requestingUserID)
	return args.Error(0)
}

func (m *MockBudgetService) FindActiveBudgets(ctx context.Context, workspaceID string, budgetIDs []string) (map[string]domain.Budget, error) {
	args := m.Called(ctx, workspaceID, budgetIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Budget), args.Error(1)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockLedgerRepository
	mockBudgetSvc  *MockBudgetService
	mockAuthorizer *MockWorkspaceAuthorizer
	service        portssvc.LedgerSvcFacade
	workspaceID    string
	userID         string
	groceries      domain.Budget
	savings        domain.Budget
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.mockBudgetSvc = new(MockBudgetService)
	suite.mockAuthorizer = new(MockWorkspaceAuthorizer)
	suite.service = services.NewLedgerService(suite.mockRepo, suite.mockBudgetSvc, suite.mockAuthorizer)

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
	suite.savings = domain.Budget{
		BudgetID:    uuid.NewString(),
		WorkspaceID: suite.workspaceID,
		Name:        "Savings",
		Target:      decimal.NewFromInt(1000),
		Period:      domain.PeriodMonthly,
		IsActive:    true,
	}
}

// --- Fund ---

func (suite *LedgerServiceTestSuite) TestFund_Success() {
	ctx := context.Background()
	req := dto.FundRequest{Amount: decimal.NewFromInt(150), Note: "payday"}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{suite.groceries.BudgetID}).
		Return(map[string]domain.Budget{suite.groceries.BudgetID: suite.groceries}, nil).Once()
	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.Fund(ctx, suite.workspaceID, suite.groceries.BudgetID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.True(entry.Amount.Equal(decimal.NewFromInt(150)))
	suite.True(entry.Amount.IsPositive())
	suite.Equal(domain.SourceManual, entry.Source)
	suite.Nil(entry.TransferID)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestFund_ExplicitDateAndSource() {
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.FundRequest{Amount: decimal.NewFromInt(20), Date: &date, Source: "IMPORT"}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{suite.groceries.BudgetID}).
		Return(map[string]domain.Budget{suite.groceries.BudgetID: suite.groceries}, nil).Once()
	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.Fund(ctx, suite.workspaceID, suite.groceries.BudgetID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(date, entry.EntryDate)
	suite.Equal(domain.SourceImport, entry.Source)
}

func (suite *LedgerServiceTestSuite) TestFund_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()

		_, err := suite.service.Fund(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.FundRequest{Amount: amount}, suite.userID)

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestFund_UnknownSource() {
	ctx := context.Background()
	req := dto.FundRequest{Amount: decimal.NewFromInt(10), Source: "CSV"}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.Fund(ctx, suite.workspaceID, suite.groceries.BudgetID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestFund_ArchivedBudgetRejected() {
	ctx := context.Background()
	req := dto.FundRequest{Amount: decimal.NewFromInt(50)}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	// Archived and missing budgets look the same to the ledger core.
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{suite.groceries.BudgetID}).
		Return(map[string]domain.Budget{}, nil).Once()

	_, err := suite.service.Fund(ctx, suite.workspaceID, suite.groceries.BudgetID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestFund_AuthorizationFail() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.Fund(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.FundRequest{Amount: decimal.NewFromInt(1)}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBudgetSvc.AssertNotCalled(suite.T(), "FindActiveBudgets", mock.Anything, mock.Anything, mock.Anything)
}

// --- Transfer ---

func (suite *LedgerServiceTestSuite) bothActive() map[string]domain.Budget {
	return map[string]domain.Budget{
		suite.groceries.BudgetID: suite.groceries,
		suite.savings.BudgetID:   suite.savings,
	}
}

func (suite *LedgerServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromBudgetID: suite.savings.BudgetID,
		ToBudgetID:   suite.groceries.BudgetID,
		Amount:       decimal.NewFromInt(75),
		Note:         "top up groceries",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{req.FromBudgetID, req.ToBudgetID}).
		Return(suite.bothActive(), nil).Once()

	var savedTransfer domain.Transfer
	var savedLegs [2]domain.LedgerEntry
	suite.mockRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transfer"), mock.AnythingOfType("[2]domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			savedTransfer = args.Get(1).(domain.Transfer)
			savedLegs = args.Get(2).([2]domain.LedgerEntry)
		}).
		Return(nil).Once()

	transfer, err := suite.service.Transfer(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(transfer)
	suite.Equal(savedTransfer.TransferID, transfer.TransferID)

	out, in := savedLegs[0], savedLegs[1]
	suite.Equal(suite.savings.BudgetID, out.BudgetID)
	suite.Equal(suite.groceries.BudgetID, in.BudgetID)
	suite.True(out.Amount.Equal(decimal.NewFromInt(-75)))
	suite.True(in.Amount.Equal(decimal.NewFromInt(75)))
	// The two legs cancel exactly; a transfer never creates or destroys funds.
	suite.True(out.Amount.Add(in.Amount).IsZero())
	suite.Equal(domain.SourceTransfer, out.Source)
	suite.Equal(domain.SourceTransfer, in.Source)
	suite.Require().NotNil(out.TransferID)
	suite.Require().NotNil(in.TransferID)
	suite.Equal(transfer.TransferID, *out.TransferID)
	suite.Equal(transfer.TransferID, *in.TransferID)
	suite.Equal(out.EntryDate, in.EntryDate)
	suite.Contains(out.Note, "Transfer out")
	suite.Contains(in.Note, "Transfer in")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransfer_SameBudget() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromBudgetID: suite.groceries.BudgetID,
		ToBudgetID:   suite.groceries.BudgetID,
		Amount:       decimal.NewFromInt(10),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.Transfer(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransfer)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransfer_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromBudgetID: suite.savings.BudgetID,
		ToBudgetID:   suite.groceries.BudgetID,
		Amount:       decimal.Zero,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.Transfer(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *LedgerServiceTestSuite) TestTransfer_OneBudgetArchived() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromBudgetID: suite.savings.BudgetID,
		ToBudgetID:   suite.groceries.BudgetID,
		Amount:       decimal.NewFromInt(10),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	// Only the source resolves; destination is archived.
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{req.FromBudgetID, req.ToBudgetID}).
		Return(map[string]domain.Budget{suite.savings.BudgetID: suite.savings}, nil).Once()

	_, err := suite.service.Transfer(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransfer_IdempotencyReplay() {
	ctx := context.Background()
	key := "retry-token-1"
	req := dto.TransferRequest{
		FromBudgetID:   suite.savings.BudgetID,
		ToBudgetID:     suite.groceries.BudgetID,
		Amount:         decimal.NewFromInt(30),
		IdempotencyKey: &key,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{req.FromBudgetID, req.ToBudgetID}).
		Return(suite.bothActive(), nil).Once()
	suite.mockRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transfer"), mock.AnythingOfType("[2]domain.LedgerEntry")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.Transfer(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *LedgerServiceTestSuite) TestTransfer_RepeatedWithoutKeyCreatesTwoTransfers() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromBudgetID: suite.savings.BudgetID,
		ToBudgetID:   suite.groceries.BudgetID,
		Amount:       decimal.NewFromInt(25),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Twice()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{req.FromBudgetID, req.ToBudgetID}).
		Return(suite.bothActive(), nil).Twice()

	var savedTransfers []domain.Transfer
	suite.mockRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transfer"), mock.AnythingOfType("[2]domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			savedTransfers = append(savedTransfers, args.Get(1).(domain.Transfer))
		}).
		Return(nil).Twice()

	first, err := suite.service.Transfer(ctx, suite.workspaceID, req, suite.userID)
	suite.Require().NoError(err)
	second, err := suite.service.Transfer(ctx, suite.workspaceID, req, suite.userID)
	suite.Require().NoError(err)

	// Without an idempotency key a repeated request is a second, independent
	// transfer: two records persisted, two distinct transfer IDs.
	suite.Require().Len(savedTransfers, 2)
	suite.NotEqual(first.TransferID, second.TransferID)
	suite.NotEqual(savedTransfers[0].TransferID, savedTransfers[1].TransferID)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "SaveTransfer", 2)
}

func (suite *LedgerServiceTestSuite) TestTransfer_RepoError() {
	ctx := context.Background()
	req := dto.TransferRequest{
		FromBudgetID: suite.savings.BudgetID,
		ToBudgetID:   suite.groceries.BudgetID,
		Amount:       decimal.NewFromInt(30),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleMember).Return(nil).Once()
	suite.mockBudgetSvc.On("FindActiveBudgets", ctx, suite.workspaceID, []string{req.FromBudgetID, req.ToBudgetID}).
		Return(suite.bothActive(), nil).Once()
	suite.mockRepo.On("SaveTransfer", ctx, mock.AnythingOfType("domain.Transfer"), mock.AnythingOfType("[2]domain.LedgerEntry")).
		Return(assert.AnError).Once()

	_, err := suite.service.Transfer(ctx, suite.workspaceID, req, suite.userID)

	suite.Require().Error(err)
	suite.Contains(err.Error(), assert.AnError.Error())
}

// --- ListEntries ---

func (suite *LedgerServiceTestSuite) TestListEntries_DefaultLimit() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), BudgetID: suite.groceries.BudgetID, Amount: decimal.NewFromInt(150), Source: domain.SourceManual},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListEntriesByBudget", ctx, suite.workspaceID, suite.groceries.BudgetID, 20, (*string)(nil)).
		Return(entries, nil, nil).Once()

	resp, err := suite.service.ListEntries(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.ListEntriesParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.Nil(resp.NextToken)
}

func (suite *LedgerServiceTestSuite) TestListEntries_PassesToken() {
	ctx := context.Background()
	token := "opaque-cursor"
	next := "next-cursor"

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListEntriesByBudget", ctx, suite.workspaceID, suite.groceries.BudgetID, 5, &token).
		Return([]domain.LedgerEntry{}, next, nil).Once()

	resp, err := suite.service.ListEntries(ctx, suite.workspaceID, suite.groceries.BudgetID, dto.ListEntriesParams{Limit: 5, NextToken: &token}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

// --- GetEntry / GetTransfer ---

func (suite *LedgerServiceTestSuite) TestGetEntry_Success() {
	ctx := context.Background()
	entry := &domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		WorkspaceID: suite.workspaceID,
		BudgetID:    suite.groceries.BudgetID,
		Amount:      decimal.NewFromInt(150),
		Source:      domain.SourceManual,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("FindEntryByID", ctx, suite.workspaceID, entry.EntryID).Return(entry, nil).Once()

	got, err := suite.service.GetEntry(ctx, suite.workspaceID, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(entry, got)
}

func (suite *LedgerServiceTestSuite) TestGetEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("FindEntryByID", ctx, suite.workspaceID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetEntry(ctx, suite.workspaceID, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetTransfer_Success() {
	ctx := context.Background()
	transfer := &domain.Transfer{
		TransferID:   uuid.NewString(),
		WorkspaceID:  suite.workspaceID,
		FromBudgetID: suite.savings.BudgetID,
		ToBudgetID:   suite.groceries.BudgetID,
		Amount:       decimal.NewFromInt(75),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("FindTransferByID", ctx, suite.workspaceID, transfer.TransferID).Return(transfer, nil).Once()

	got, err := suite.service.GetTransfer(ctx, suite.workspaceID, transfer.TransferID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(transfer, got)
}

func (suite *LedgerServiceTestSuite) TestGetTransfer_NonMember() {
	ctx := context.Background()
	transferID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.workspaceID, domain.RoleReadOnly).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.GetTransfer(ctx, suite.workspaceID, transferID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransferByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
