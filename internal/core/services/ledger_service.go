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

var (
	ErrZeroAmount      = errors.New("ledger entry amount must not be zero")
	ErrNonPositive     = errors.New("amount must be positive")
	ErrSameBudget      = errors.New("source and destination budgets must differ")
	ErrBudgetNotActive = errors.New("budget missing or archived")
	ErrUnknownSource   = errors.New("unknown entry source")
)

// ledgerService provides the append-only ledger core: fundings and atomic
// two-leg transfers. Entries are never mutated after creation; balances are
// always derived by summation, which is what lets concurrent writers run
// without locks.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	budgetSvc  portssvc.BudgetSvcFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, budgetSvc portssvc.BudgetSvcFacade, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		ledgerRepo:  ledgerRepo,
		budgetSvc:   budgetSvc,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// newEntry builds a validated ledger entry. This is the single construction
// path shared by the funding and transfer flows; the amount must be non-zero.
func newEntry(workspaceID, budgetID string, amount decimal.Decimal, date time.Time, note string, source domain.EntrySource, transferID *string, now time.Time, creatorUserID string) (domain.LedgerEntry, error) {
	if amount.IsZero() {
		return domain.LedgerEntry{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidAmount, ErrZeroAmount)
	}
	return domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		WorkspaceID: workspaceID,
		BudgetID:    budgetID,
		Amount:      amount,
		EntryDate:   date,
		Note:        note,
		Source:      source,
		TransferID:  transferID,
		CreatedAt:   now,
		CreatedBy:   creatorUserID,
	}, nil
}

// Fund appends a positive funding entry against an active budget.
func (s *ledgerService) Fund(ctx context.Context, workspaceID, budgetID string, req dto.FundRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: funding %w", apperrors.ErrInvalidAmount, ErrNonPositive)
	}

	source := domain.SourceManual
	if req.Source != "" {
		source = domain.EntrySource(req.Source)
		if source != domain.SourceManual && source != domain.SourceImport {
			return nil, fmt.Errorf("%w: %w %q", apperrors.ErrValidation, ErrUnknownSource, req.Source)
		}
	}

	// Write-time activeness check: archived budgets reject new entries, but
	// their history stays intact.
	budgets, err := s.budgetSvc.FindActiveBudgets(ctx, workspaceID, []string{budgetID})
	if err != nil {
		return nil, err
	}
	if _, found := budgets[budgetID]; !found {
		s.LogDebug(ctx, "Funding rejected, budget not active in workspace",
			slog.String("budget_id", budgetID),
			slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	entry, err := newEntry(workspaceID, budgetID, req.Amount, date, req.Note, source, nil, now, creatorUserID)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append funding entry",
			slog.String("budget_id", budgetID),
			slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to record funding: %w", err)
	}

	s.LogInfo(ctx, "Funding recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("budget_id", budgetID),
		slog.String("amount", req.Amount.String()))
	return &entry, nil
}

// Transfer moves funds between two budgets in one workspace as a single
// atomic unit: exactly two entries with equal absolute amount and opposite
// sign, sharing a timestamp and transfer ID. Either both legs are durable or
// neither is.
//
// Without an idempotency key the operation is not idempotent: repeating the
// request creates a second transfer. Callers that retry over unreliable
// networks should supply req.IdempotencyKey; a replay then fails with
// apperrors.ErrDuplicate instead of moving funds twice.
func (s *ledgerService) Transfer(ctx context.Context, workspaceID string, req dto.TransferRequest, creatorUserID string) (*domain.Transfer, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.FromBudgetID == req.ToBudgetID {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidTransfer, ErrSameBudget)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer %w", apperrors.ErrInvalidAmount, ErrNonPositive)
	}

	// Both budgets are checked together; a partial match (one found, one
	// archived or foreign) is treated as a full failure before any write.
	budgets, err := s.budgetSvc.FindActiveBudgets(ctx, workspaceID, []string{req.FromBudgetID, req.ToBudgetID})
	if err != nil {
		return nil, err
	}
	if len(budgets) != 2 {
		s.LogDebug(ctx, "Transfer rejected, budgets not all active",
			slog.String("from_budget_id", req.FromBudgetID),
			slog.String("to_budget_id", req.ToBudgetID),
			slog.Int("resolved", len(budgets)))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrNotFound, ErrBudgetNotActive)
	}

	now := time.Now().UTC()
	transferID := uuid.NewString()

	outNote := "Transfer out"
	inNote := "Transfer in"
	if req.Note != "" {
		outNote = fmt.Sprintf("Transfer out: %s", req.Note)
		inNote = fmt.Sprintf("Transfer in: %s", req.Note)
	}

	// Both legs share the same timestamp so a window query can never split
	// them across a boundary.
	outLeg, err := newEntry(workspaceID, req.FromBudgetID, req.Amount.Neg(), now, outNote, domain.SourceTransfer, &transferID, now, creatorUserID)
	if err != nil {
		return nil, err
	}
	inLeg, err := newEntry(workspaceID, req.ToBudgetID, req.Amount, now, inNote, domain.SourceTransfer, &transferID, now, creatorUserID)
	if err != nil {
		return nil, err
	}

	transfer := domain.Transfer{
		TransferID:     transferID,
		WorkspaceID:    workspaceID,
		FromBudgetID:   req.FromBudgetID,
		ToBudgetID:     req.ToBudgetID,
		Amount:         req.Amount,
		Note:           req.Note,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      now,
		CreatedBy:      creatorUserID,
	}

	if err := s.ledgerRepo.SaveTransfer(ctx, transfer, [2]domain.LedgerEntry{outLeg, inLeg}); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Transfer replay detected by idempotency key",
				slog.String("workspace_id", workspaceID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save transfer",
			slog.String("from_budget_id", req.FromBudgetID),
			slog.String("to_budget_id", req.ToBudgetID))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer completed",
		slog.String("transfer_id", transferID),
		slog.String("from_budget_id", req.FromBudgetID),
		slog.String("to_budget_id", req.ToBudgetID),
		slog.String("amount", req.Amount.String()))
	return &transfer, nil
}

// ListEntries retrieves ledger entries for one budget, newest first.
// Archived budgets remain listable: the ledger is the permanent audit trail.
func (s *ledgerService) ListEntries(ctx context.Context, workspaceID, budgetID string, params dto.ListEntriesParams, requestingUserID string) (*dto.ListEntriesResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20 // Default limit
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByBudget(ctx, workspaceID, budgetID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// GetEntry retrieves one ledger entry by ID within the workspace.
func (s *ledgerService) GetEntry(ctx context.Context, workspaceID, entryID, requestingUserID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	entry, err := s.ledgerRepo.FindEntryByID(ctx, workspaceID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get ledger entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// GetTransfer retrieves one transfer record by ID within the workspace.
func (s *ledgerService) GetTransfer(ctx context.Context, workspaceID, transferID, requestingUserID string) (*domain.Transfer, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	transfer, err := s.ledgerRepo.FindTransferByID(ctx, workspaceID, transferID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get transfer", slog.String("transfer_id", transferID))
		}
		return nil, err
	}
	return transfer, nil
}
