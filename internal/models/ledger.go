package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents a row in the ledger_entries table. Rows are only
// ever inserted; there is no update path.
type LedgerEntry struct {
	EntryID     string          `db:"entry_id"`
	WorkspaceID string          `db:"workspace_id"`
	BudgetID    string          `db:"budget_id"`
	Amount      decimal.Decimal `db:"amount"` // Signed
	EntryDate   time.Time       `db:"entry_date"`
	Note        string          `db:"note"`
	Source      string          `db:"source"`
	TransferID  *string         `db:"transfer_id"` // Nullable
	CreatedAt   time.Time       `db:"created_at"`
	CreatedBy   string          `db:"created_by"`
}

// Transfer represents a row in the transfers table.
type Transfer struct {
	TransferID     string          `db:"transfer_id"`
	WorkspaceID    string          `db:"workspace_id"`
	FromBudgetID   string          `db:"from_budget_id"`
	ToBudgetID     string          `db:"to_budget_id"`
	Amount         decimal.Decimal `db:"amount"`
	Note           string          `db:"note"`
	IdempotencyKey *string         `db:"idempotency_key"` // Nullable, unique per workspace
	CreatedAt      time.Time       `db:"created_at"`
	CreatedBy      string          `db:"created_by"`
}
