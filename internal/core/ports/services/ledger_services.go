package services

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// LedgerSvcFacade exposes the append-only ledger core: fundings and
// transfers. There are no update or delete operations; corrections are
// offsetting entries appended by the caller.
type LedgerSvcFacade interface {
	// Fund appends a positive ledger entry against an active budget.
	// Fails with apperrors.ErrInvalidAmount for amount <= 0 and
	// apperrors.ErrNotFound when the budget is missing or archived.
	Fund(ctx context.Context, workspaceID, budgetID string, req dto.FundRequest, creatorUserID string) (*domain.LedgerEntry, error)
	// Transfer atomically moves funds between two budgets in the workspace,
	// producing exactly two linked entries with opposite signs.
	Transfer(ctx context.Context, workspaceID string, req dto.TransferRequest, creatorUserID string) (*domain.Transfer, error)
	ListEntries(ctx context.Context, workspaceID, budgetID string, params dto.ListEntriesParams, requestingUserID string) (*dto.ListEntriesResponse, error)
	// GetEntry resolves a single ledger entry in the workspace.
	GetEntry(ctx context.Context, workspaceID, entryID, requestingUserID string) (*domain.LedgerEntry, error)
	// GetTransfer resolves a transfer record; its legs carry the transfer ID
	// and are readable through ListEntries.
	GetTransfer(ctx context.Context, workspaceID, transferID, requestingUserID string) (*domain.Transfer, error)
}
