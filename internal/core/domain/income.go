package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a record of money received into a workspace. Like ledger entries
// and expenses it is append-only.
type Income struct {
	IncomeID     string          `json:"incomeID"`    // Primary Key (UUID)
	WorkspaceID  string          `json:"workspaceID"` // FK -> workspaces.workspace_id
	Source       string          `json:"source"`      // Where the money came from (salary, refund, ...)
	Amount       decimal.Decimal `json:"amount"`      // Always > 0
	ReceivedDate time.Time       `json:"receivedDate"`
	Note         string          `json:"note"`
	AuditFields
}
