package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource indicates what produced a ledger entry.
type EntrySource string

const (
	SourceManual   EntrySource = "MANUAL"   // direct funding by a user
	SourceTransfer EntrySource = "TRANSFER" // one leg of a budget-to-budget transfer
	SourceImport   EntrySource = "IMPORT"   // rows ingested by a bulk import
)

// LedgerEntry is a single immutable signed monetary event against a budget.
// Positive amounts are inflows (funding, transfer-in), negative amounts are
// outflows (transfer-out). Entries are never updated or deleted; a mistake
// is corrected by appending an offsetting entry.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`     // Primary Key (UUID)
	WorkspaceID string          `json:"workspaceID"` // FK -> workspaces.workspace_id
	BudgetID    string          `json:"budgetID"`    // FK -> budgets.budget_id
	Amount      decimal.Decimal `json:"amount"`      // Signed, never zero
	EntryDate   time.Time       `json:"entryDate"`   // When the event occurred
	Note        string          `json:"note"`        // Optional user note
	Source      EntrySource     `json:"source"`      // MANUAL, TRANSFER or IMPORT
	TransferID  *string         `json:"transferID,omitempty"` // Shared by the two legs of a transfer
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"` // UserID Reference
}

// Transfer is the record of an atomic two-leg fund movement between budgets.
type Transfer struct {
	TransferID     string          `json:"transferID"` // Primary Key (UUID)
	WorkspaceID    string          `json:"workspaceID"`
	FromBudgetID   string          `json:"fromBudgetID"`
	ToBudgetID     string          `json:"toBudgetID"`
	Amount         decimal.Decimal `json:"amount"` // Positive magnitude moved
	Note           string          `json:"note"`
	IdempotencyKey *string         `json:"idempotencyKey,omitempty"` // Optional client retry token
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}
