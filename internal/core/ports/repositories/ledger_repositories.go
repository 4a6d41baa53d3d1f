package repositories

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// LedgerRepositoryFacade defines persistence operations for the append-only
// ledger. There are deliberately no update or delete methods: entries are
// immutable once written.
type LedgerRepositoryFacade interface {
	// SaveEntry appends a single ledger entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
	// SaveTransfer persists the transfer record and both of its legs inside a
	// single database transaction. Either everything is durable or nothing is;
	// a concurrent reader must never observe exactly one leg. A transfer whose
	// idempotency key already exists in the workspace fails with
	// apperrors.ErrDuplicate and writes nothing.
	SaveTransfer(ctx context.Context, transfer domain.Transfer, legs [2]domain.LedgerEntry) error
	FindEntryByID(ctx context.Context, workspaceID, entryID string) (*domain.LedgerEntry, error)
	// ListEntriesByBudget returns entries newest-first with cursor pagination.
	ListEntriesByBudget(ctx context.Context, workspaceID, budgetID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
	FindTransferByID(ctx context.Context, workspaceID, transferID string) (*domain.Transfer, error)
}
